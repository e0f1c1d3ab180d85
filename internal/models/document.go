package models

import (
	"fmt"
	"time"
)

// timestampLayout is ISO-8601 with fixed-width nanoseconds. The width
// matters: RFC3339Nano trims trailing fractional zeros, which would make
// "10:00:00Z" compare greater than the later "10:00:00.5Z". With every
// digit always present, lexicographic order is chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// OrderDocument is the persisted form of an Order. The storage media have no
// timestamp type compatible with time.Time here, so both timestamps are
// stored as ISO-8601 UTC strings whose lexicographic order is chronological
// order, which the list query relies on.
type OrderDocument struct {
	ID          string       `json:"id" bson:"id"`
	OrderNumber string       `json:"order_number" bson:"order_number"`
	Customer    CustomerInfo `json:"customer" bson:"customer"`
	Shipping    ShippingInfo `json:"shipping" bson:"shipping"`
	Payment     PaymentInfo  `json:"payment" bson:"payment"`
	Items       []OrderItem  `json:"items" bson:"items"`
	Status      string       `json:"status" bson:"status"`
	CreatedAt   string       `json:"created_at" bson:"created_at"`
	UpdatedAt   string       `json:"updated_at" bson:"updated_at"`
}

// Document converts the order to its persisted form.
func (o *Order) Document() OrderDocument {
	return OrderDocument{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Customer:    o.Customer,
		Shipping:    o.Shipping,
		Payment:     o.Payment,
		Items:       o.Items,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:   o.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// OrderFromDocument restores an Order from its persisted form.
func OrderFromDocument(doc OrderDocument) (*Order, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", doc.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", doc.UpdatedAt, err)
	}
	return &Order{
		ID:          doc.ID,
		OrderNumber: doc.OrderNumber,
		Customer:    doc.Customer,
		Shipping:    doc.Shipping,
		Payment:     doc.Payment,
		Items:       doc.Items,
		Status:      doc.Status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
