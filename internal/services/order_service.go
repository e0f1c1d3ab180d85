package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"

	"airstore/internal/models"
	"airstore/internal/repositories"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService orchestrates the checkout workflow and serves the read-only
// query surface.
type OrderService struct {
	repo      repositories.OrderRepository
	notifier  Notifier
	publisher EventPublisher // optional; nil disables event publishing
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService. publisher may be nil when no
// message broker is configured.
func NewOrderService(repo repositories.OrderRepository, notifier Notifier, publisher EventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// CreateOrder validates a checkout submission, persists the resulting order
// and dispatches both notification emails. Persistence is a precondition
// for notification: nothing is sent for an order that does not durably
// exist. Notification outcomes are reported as flags and never fail the
// request.
func (s *OrderService) CreateOrder(ctx context.Context, submission models.CheckoutSubmission) (*models.OrderCreationResult, error) {
	if err := s.validate.Struct(submission); err != nil {
		return nil, asValidationError(err)
	}

	order := models.NewOrder(submission.Customer, submission.Shipping, submission.Payment, submission.Items)

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	notificationSent := s.notifier.SendOrderNotification(order)
	confirmationSent := s.notifier.SendCustomerConfirmation(order)

	s.publishOrderCreated(order)

	log.Printf("Order created: %s, notification: %t, confirmation: %t",
		order.OrderNumber, notificationSent, confirmationSent)

	return &models.OrderCreationResult{
		OrderID:          order.OrderNumber,
		Status:           order.Status,
		Message:          "Orden creada exitosamente",
		NotificationSent: notificationSent,
		ConfirmationSent: confirmationSent,
	}, nil
}

// GetOrder retrieves a single order by its human-facing number.
func (s *OrderService) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		return nil, &NotFoundError{OrderNumber: orderNumber}
	}
	if err != nil {
		return nil, &OperationError{Err: err}
	}
	return order, nil
}

// ListOrders returns one page of orders, most recently created first, plus
// the total count across all orders.
func (s *OrderService) ListOrders(ctx context.Context, limit, skip int) (*models.OrderPage, error) {
	orders, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, &OperationError{Err: err}
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, &OperationError{Err: err}
	}
	return &models.OrderPage{
		Orders: orders,
		Total:  total,
		Skip:   skip,
		Limit:  limit,
	}, nil
}

// publishOrderCreated emits a best-effort order.created event. Failures are
// logged only; the order is already durable.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"total":        order.Payment.Total,
		"created_at":   order.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to marshal order.created event for %s: %v", order.OrderNumber, err)
		return
	}
	if err := s.publisher.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order.created for %s: %v", order.OrderNumber, err)
	}
}

// asValidationError flattens validator output into the structured error the
// boundary reports.
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{}
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
	}
	return &ValidationError{Fields: fields}
}
