package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"airstore/internal/models"
	"airstore/internal/repositories"
)

func newSQLiteRepo(t *testing.T) *repositories.GORMOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo, err := repositories.NewGORMOrderRepository(db)
	require.NoError(t, err)
	return repo
}

func storedOrder(createdAt time.Time, token string) *models.Order {
	order := models.NewOrder(
		models.CustomerInfo{
			Name:             "Maria Perez",
			Email:            "maria@example.com",
			Phone:            "809-555-0101",
			DocumentNumber:   "001-1234567-8",
			DocumentType:     models.DocumentTypeDNI,
			PreferredContact: models.ContactWhatsApp,
		},
		models.ShippingInfo{Province: "Santo Domingo", City: "SDE", Address: "Calle Duarte #42"},
		models.PaymentInfo{Method: "Visa", Total: 100},
		[]models.OrderItem{{ID: 1, Name: "Air Classic", Price: 100, Quantity: 1}},
	)
	order.OrderNumber = "AIR-" + createdAt.Format("20060102") + "-" + token
	order.CreatedAt = createdAt
	order.UpdatedAt = createdAt
	return order
}

func TestGORMRepositoryInsertAndFind(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	order := storedOrder(time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC), "AAAA1111")
	require.NoError(t, repo.Insert(ctx, order))

	found, err := repo.FindByOrderNumber(ctx, order.OrderNumber)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, order.Customer, found.Customer)
	assert.Equal(t, order.Items, found.Items)
	assert.True(t, found.CreatedAt.Equal(order.CreatedAt))
}

func TestGORMRepositoryFindMissing(t *testing.T) {
	repo := newSQLiteRepo(t)

	_, err := repo.FindByOrderNumber(context.Background(), "AIR-20240101-ABCD1234")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMRepositoryListPagination(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	tokens := []string{"AAAA0000", "BBBB1111", "CCCC2222", "DDDD3333", "EEEE4444"}
	for i, token := range tokens {
		require.NoError(t, repo.Insert(ctx, storedOrder(base.Add(time.Duration(i)*time.Minute), token)))
	}

	page, err := repo.List(ctx, 2, 0)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	// Most recently created first.
	assert.Contains(t, page[0].OrderNumber, "EEEE4444")
	assert.Contains(t, page[1].OrderNumber, "DDDD3333")

	total, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)

	rest, err := repo.List(ctx, 10, 4)
	assert.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Contains(t, rest[0].OrderNumber, "AAAA0000")
}

func TestGORMRepositoryListOrdersWithinOneSecond(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	// An order at an exact second followed by one half a second later:
	// the later one must still list first.
	second := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, storedOrder(second, "AAAA0000")))
	require.NoError(t, repo.Insert(ctx, storedOrder(second.Add(500*time.Millisecond), "BBBB1111")))

	page, err := repo.List(ctx, 2, 0)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	assert.Contains(t, page[0].OrderNumber, "BBBB1111")
	assert.Contains(t, page[1].OrderNumber, "AAAA0000")
}

func TestGORMRepositoryEmptyList(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	page, err := repo.List(ctx, 50, 0)
	assert.NoError(t, err)
	assert.Empty(t, page)

	total, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Zero(t, total)
}
