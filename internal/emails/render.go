// Package emails renders the two order notification documents. Rendering is
// pure: the same order always produces byte-identical documents, and missing
// optional fields degrade to omitted lines instead of errors.
package emails

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"airstore/internal/models"
)

// Carrier is the fixed shipping carrier named in both documents.
const Carrier = "Caribe Turs"

// Document is a rendered notification: a subject line plus an HTML body.
type Document struct {
	Subject string
	HTML    string
}

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders an amount as local currency with thousands separators
// and exactly two decimals, e.g. "RD$1,299.50".
func formatMoney(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return moneyPrinter.Sprintf("RD$%.2f", f)
}

func lineTotal(item models.OrderItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// itemsSubtotal is the sum of all line totals. It is informational only:
// the rendered grand total always comes from PaymentInfo.Total, even when
// the two disagree.
func itemsSubtotal(items []models.OrderItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(lineTotal(item))
	}
	return subtotal
}

type itemRow struct {
	Image     string
	Name      string
	Size      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type operatorView struct {
	OrderNumber     string
	Date            string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DocumentLine    string
	ShowContactLine bool
	ContactLabel    string
	ContactValue    string
	Province        string
	City            string
	Address         string
	ShowPostalCode  bool
	PostalCode      string
	ShowReferences  bool
	References      string
	Items           []itemRow
	Subtotal        string
	Carrier         string
	Total           string
	PaymentMethod   string
}

type customerView struct {
	CustomerName string
	OrderNumber  string
	Date         string
	Items        []itemRow
	Total        string
	Carrier      string
	Address      string
	City         string
	Province     string
}

// RenderOperatorNotification builds the document sent to the store operator:
// the full customer, shipping and payment picture for a new order.
func RenderOperatorNotification(order *models.Order) (Document, error) {
	view := operatorView{
		OrderNumber:   order.OrderNumber,
		Date:          order.CreatedAt.Format("02/01/2006 15:04"),
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		CustomerPhone: order.Customer.Phone,
		DocumentLine:  fmt.Sprintf("%s - %s", strings.ToUpper(order.Customer.DocumentType), order.Customer.DocumentNumber),
		Province:      order.Shipping.Province,
		City:          order.Shipping.City,
		Address:       order.Shipping.Address,
		// Optional lines are omitted entirely when empty.
		ShowPostalCode: order.Shipping.PostalCode != "",
		PostalCode:     order.Shipping.PostalCode,
		ShowReferences: order.Shipping.References != "",
		References:     order.Shipping.References,
		Subtotal:       formatMoney(itemsSubtotal(order.Items)),
		Carrier:        Carrier,
		Total:          formatMoney(decimal.NewFromFloat(order.Payment.Total)),
		PaymentMethod:  order.Payment.Method,
	}

	// The extra contact line appears only when the preferred channel's
	// handle was actually provided.
	switch {
	case order.Customer.PreferredContact == models.ContactWhatsApp && order.Customer.WhatsApp != "":
		view.ShowContactLine = true
		view.ContactLabel = "WhatsApp"
		view.ContactValue = order.Customer.WhatsApp
	case order.Customer.PreferredContact == models.ContactInstagram && order.Customer.Instagram != "":
		view.ShowContactLine = true
		view.ContactLabel = "Instagram"
		view.ContactValue = "@" + order.Customer.Instagram
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, itemRow{
			Image:     item.Image,
			Name:      item.Name,
			Size:      item.SelectedSize,
			Quantity:  item.Quantity,
			UnitPrice: formatMoney(decimal.NewFromFloat(item.Price)),
			LineTotal: formatMoney(lineTotal(item)),
		})
	}

	html, err := execute(operatorTemplate, view)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Subject: "Nueva Orden Air Store - " + order.OrderNumber,
		HTML:    html,
	}, nil
}

// RenderCustomerConfirmation builds the document sent to the customer: a
// greeting, a simplified item table, the total and a shipping summary.
func RenderCustomerConfirmation(order *models.Order) (Document, error) {
	view := customerView{
		CustomerName: order.Customer.Name,
		OrderNumber:  order.OrderNumber,
		Date:         order.CreatedAt.Format("02/01/2006 15:04"),
		Total:        formatMoney(decimal.NewFromFloat(order.Payment.Total)),
		Carrier:      Carrier,
		Address:      order.Shipping.Address,
		City:         order.Shipping.City,
		Province:     order.Shipping.Province,
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, itemRow{
			Name:      item.Name,
			Size:      item.SelectedSize,
			Quantity:  item.Quantity,
			LineTotal: formatMoney(lineTotal(item)),
		})
	}

	html, err := execute(customerTemplate, view)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Subject: "Confirmación de Orden Air - " + order.OrderNumber,
		HTML:    html,
	}, nil
}

func execute(tmpl *template.Template, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
