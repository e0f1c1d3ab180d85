package services

import (
	"log"

	"airstore/internal/emails"
	"airstore/internal/models"
)

// Mailer transmits one rendered document to one address.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Notifier is the order service's view of the notification dispatcher.
type Notifier interface {
	SendOrderNotification(order *models.Order) bool
	SendCustomerConfirmation(order *models.Order) bool
}

// EmailService renders and dispatches the two order notification emails.
// Sends are best-effort: every failure is logged and reported as false,
// never propagated to the caller.
type EmailService struct {
	mailer       Mailer
	operatorAddr string
}

// NewEmailService creates a new EmailService. operatorAddr is the fixed
// address that receives new-order notifications.
func NewEmailService(mailer Mailer, operatorAddr string) *EmailService {
	return &EmailService{
		mailer:       mailer,
		operatorAddr: operatorAddr,
	}
}

// SendOrderNotification emails the store operator about a new order.
func (s *EmailService) SendOrderNotification(order *models.Order) bool {
	return s.dispatch(order, s.operatorAddr, "order notification", emails.RenderOperatorNotification)
}

// SendCustomerConfirmation emails the customer their order confirmation.
func (s *EmailService) SendCustomerConfirmation(order *models.Order) bool {
	return s.dispatch(order, order.Customer.Email, "customer confirmation", emails.RenderCustomerConfirmation)
}

// dispatch renders and sends one document, converting any fault, panics
// included, into a logged false. The order is already durable by the time
// this runs; nothing here may abort the request.
func (s *EmailService) dispatch(order *models.Order, to, kind string, render func(*models.Order) (emails.Document, error)) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic dispatching %s for order %s: %v", kind, order.OrderNumber, r)
			sent = false
		}
	}()

	doc, err := render(order)
	if err != nil {
		log.Printf("Error rendering %s for order %s: %v", kind, order.OrderNumber, err)
		return false
	}
	if err := s.mailer.Send(to, doc.Subject, doc.HTML); err != nil {
		log.Printf("Error sending %s for order %s: %v", kind, order.OrderNumber, err)
		return false
	}
	log.Printf("Sent %s for order %s to %s", kind, order.OrderNumber, to)
	return true
}
