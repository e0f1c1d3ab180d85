package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"airstore/internal/models"
	"airstore/internal/services"
)

// listLimitDefault and listLimitMax bound GET /orders pages. The cap keeps
// a single page from returning the whole store.
const (
	listLimitDefault = 50
	listLimitMax     = 200
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:order_number", h.HandleGetOrder)
}

// HandleCreateOrder accepts a checkout submission and runs the order
// creation workflow.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var submission models.CheckoutSubmission
	if err := c.BodyParser(&submission); err != nil {
		log.Printf("Error parsing checkout submission: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result, err := h.service.CreateOrder(c.Context(), submission)
	if err != nil {
		log.Printf("Error creating order: %v", err)

		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid checkout submission",
				"error":   validationErr.Error(),
			})
		}
		// PersistenceError and anything else unexpected: the order was
		// not created.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleGetOrder retrieves a single order by its human-facing number.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderNumber := c.Params("order_number")

	order, err := h.service.GetOrder(c.Context(), orderNumber)
	if err != nil {
		var notFoundErr *services.NotFoundError
		if errors.As(err, &notFoundErr) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", orderNumber, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
		})
	}

	return c.JSON(order)
}

// HandleListOrders returns a page of orders, most recent first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", listLimitDefault)
	skip := c.QueryInt("skip", 0)

	if limit < 1 {
		limit = listLimitDefault
	}
	if limit > listLimitMax {
		limit = listLimitMax
	}
	if skip < 0 {
		skip = 0
	}

	page, err := h.service.ListOrders(c.Context(), limit, skip)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}

	return c.JSON(page)
}
