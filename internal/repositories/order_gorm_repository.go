package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"airstore/internal/models"
)

// orderRow is the relational shape of an order: the full document as a JSON
// blob plus the columns the query surface filters and sorts on. created_at
// holds the document's fixed-width ISO-8601 UTC string, so lexicographic
// DESC ordering is chronological DESC.
type orderRow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	OrderNumber string `gorm:"uniqueIndex;type:varchar(32)"`
	CreatedAt   string `gorm:"index;type:varchar(40)"`
	Document    []byte `gorm:"type:text"`
}

func (orderRow) TableName() string {
	return "orders"
}

// GORMOrderRepository is a GORM implementation of OrderRepository backed by
// SQLite or PostgreSQL.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository and
// migrates the orders table.
func NewGORMOrderRepository(db *gorm.DB) (*GORMOrderRepository, error) {
	if err := db.AutoMigrate(&orderRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate orders table: %w", err)
	}
	return &GORMOrderRepository{db: db}, nil
}

// Insert persists a new order.
func (r *GORMOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	doc := order.Document()
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", order.OrderNumber, err)
	}
	row := orderRow{
		ID:          doc.ID,
		OrderNumber: doc.OrderNumber,
		CreatedAt:   doc.CreatedAt,
		Document:    payload,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderNumber, err)
	}
	return nil
}

// FindByOrderNumber retrieves a single order by its human-facing number.
func (r *GORMOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).First(&row, "order_number = ?", orderNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", orderNumber, err)
	}
	return rowToOrder(row)
}

// List returns a page of orders, most recently created first.
func (r *GORMOrderRepository) List(ctx context.Context, limit, skip int) ([]models.Order, error) {
	var rows []orderRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		order, err := rowToOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// Count returns the total number of stored orders, unfiltered by pagination.
func (r *GORMOrderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&orderRow{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

func rowToOrder(row orderRow) (*models.Order, error) {
	var doc models.OrderDocument
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", row.OrderNumber, err)
	}
	return models.OrderFromDocument(doc)
}
