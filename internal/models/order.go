package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StatusConfirmed is the only status the checkout workflow produces; no
// transition path exists yet.
const StatusConfirmed = "confirmed"

// Known values for CustomerInfo.DocumentType.
const (
	DocumentTypeDNI      = "dni"
	DocumentTypeRNC      = "rnc"
	DocumentTypePassport = "pasaporte"
)

// Known values for CustomerInfo.PreferredContact.
const (
	ContactWhatsApp  = "whatsapp"
	ContactInstagram = "instagram"
)

// CustomerInfo holds the buyer's identity and contact details as submitted
// at checkout. The JSON keys match the storefront's wire format.
type CustomerInfo struct {
	Name             string `json:"nombre" bson:"nombre" validate:"required"`
	Email            string `json:"email" bson:"email" validate:"required,email"`
	Phone            string `json:"telefono" bson:"telefono" validate:"required"`
	DocumentNumber   string `json:"dni_rnc" bson:"dni_rnc" validate:"required"`
	DocumentType     string `json:"documento_tipo" bson:"documento_tipo" validate:"required,oneof=dni rnc pasaporte"`
	PreferredContact string `json:"contacto_preferido" bson:"contacto_preferido" validate:"required,oneof=whatsapp instagram"`
	WhatsApp         string `json:"whatsapp" bson:"whatsapp"`
	Instagram        string `json:"instagram" bson:"instagram"`
}

// ShippingInfo holds the delivery address for an order.
type ShippingInfo struct {
	Province   string `json:"provincia" bson:"provincia" validate:"required"`
	City       string `json:"ciudad" bson:"ciudad" validate:"required"`
	Address    string `json:"direccion" bson:"direccion" validate:"required"`
	PostalCode string `json:"codigo_postal" bson:"codigo_postal"`
	References string `json:"referencias" bson:"referencias"`
}

// PaymentInfo records how the customer intends to pay. The total is taken
// as submitted and is never recomputed from the items.
type PaymentInfo struct {
	Method string  `json:"metodo_pago" bson:"metodo_pago" validate:"required"`
	Total  float64 `json:"total" bson:"total" validate:"required,gt=0"`
}

// OrderItem is a denormalized snapshot of a catalog item at purchase time.
type OrderItem struct {
	ID           int     `json:"id" bson:"id" validate:"gte=0"`
	Name         string  `json:"name" bson:"name" validate:"required"`
	Price        float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity     int     `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	SelectedSize string  `json:"selectedSize" bson:"selectedSize"`
	Image        string  `json:"image" bson:"image"`
}

// CheckoutSubmission is the typed request body for POST /api/orders.
type CheckoutSubmission struct {
	Customer CustomerInfo `json:"customer" validate:"required"`
	Shipping ShippingInfo `json:"shipping" validate:"required"`
	Payment  PaymentInfo  `json:"payment" validate:"required"`
	Items    []OrderItem  `json:"items" validate:"required,min=1,dive"`
}

// Order is the durable record of a completed checkout.
type Order struct {
	ID          string       `json:"id"`
	OrderNumber string       `json:"order_number"`
	Customer    CustomerInfo `json:"customer"`
	Shipping    ShippingInfo `json:"shipping"`
	Payment     PaymentInfo  `json:"payment"`
	Items       []OrderItem  `json:"items"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewOrder builds a confirmed order from validated checkout data, assigning
// a fresh internal ID, a human-facing order number, and UTC timestamps.
func NewOrder(customer CustomerInfo, shipping ShippingInfo, payment PaymentInfo, items []OrderItem) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:          uuid.New().String(),
		OrderNumber: newOrderNumber(now),
		Customer:    customer,
		Shipping:    shipping,
		Payment:     payment,
		Items:       items,
		Status:      StatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// newOrderNumber produces an "AIR-YYYYMMDD-XXXXXXXX" number: the order date
// in UTC plus the first 8 hex characters of a random UUID, uppercased.
// Uniqueness is probabilistic; collisions are not actively checked at this
// scale.
func newOrderNumber(now time.Time) string {
	token := strings.ToUpper(uuid.New().String()[:8])
	return "AIR-" + now.Format("20060102") + "-" + token
}

// OrderCreationResult is the composite response of the checkout workflow.
// The two dispatch flags are informational; they never turn the response
// into a failure once the order is persisted.
type OrderCreationResult struct {
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	NotificationSent bool   `json:"notification_sent"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

// OrderPage is one page of the order listing plus the unfiltered total.
type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Skip   int     `json:"skip"`
	Limit  int     `json:"limit"`
}
