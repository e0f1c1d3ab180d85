package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airstore/internal/handlers"
	"airstore/internal/models"
	"airstore/internal/repositories"
	"airstore/internal/services"
)

// captureMailer records outgoing mail instead of talking to a relay.
type captureMailer struct {
	sent []struct{ To, Subject string }
	err  error
}

func (m *captureMailer) Send(to, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, struct{ To, Subject string }{to, subject})
	return nil
}

// setupApp builds a Fiber app over an in-memory repository and a capturing
// mailer.
func setupApp(mailer *captureMailer) *fiber.App {
	orderRepo := repositories.NewMockOrderRepository()
	emailService := services.NewEmailService(mailer, "store@airstore.com")
	orderService := services.NewOrderService(orderRepo, emailService, nil)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	api := app.Group("/api")
	orderHandler.RegisterRoutes(api)
	return app
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{
			"nombre":             "Maria Perez",
			"email":              "maria@example.com",
			"telefono":           "809-555-0101",
			"dni_rnc":            "001-1234567-8",
			"documento_tipo":     "dni",
			"contacto_preferido": "whatsapp",
			"whatsapp":           "809-555-0101",
		},
		"shipping": map[string]interface{}{
			"provincia": "Santo Domingo",
			"ciudad":    "Santo Domingo Este",
			"direccion": "Calle Duarte #42",
		},
		"payment": map[string]interface{}{
			"metodo_pago": "Visa",
			"total":       2599.98,
		},
		"items": []map[string]interface{}{
			{
				"id":           1,
				"name":         "Air Classic",
				"price":        1299.99,
				"quantity":     2,
				"selectedSize": "M",
				"image":        "https://cdn.example.com/air-classic.jpg",
			},
		},
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output.
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestCreateOrderEndpoint(t *testing.T) {
	mailer := &captureMailer{}
	app := setupApp(mailer)

	resp := postJSON(t, app, "/api/orders", checkoutBody())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result models.OrderCreationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Regexp(t, regexp.MustCompile(`^AIR-\d{8}-[A-Z0-9]{8}$`), result.OrderID)
	assert.Equal(t, "confirmed", result.Status)
	assert.True(t, result.NotificationSent)
	assert.True(t, result.ConfirmationSent)

	// One mail to the operator, one to the customer.
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "store@airstore.com", mailer.sent[0].To)
	assert.Equal(t, "maria@example.com", mailer.sent[1].To)
	assert.Contains(t, mailer.sent[0].Subject, result.OrderID)
}

func TestCreateOrderEndpointMailFailureStillSucceeds(t *testing.T) {
	mailer := &captureMailer{err: fmt.Errorf("relay down")}
	app := setupApp(mailer)

	resp := postJSON(t, app, "/api/orders", checkoutBody())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result models.OrderCreationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.OrderID)
	assert.False(t, result.NotificationSent)
	assert.False(t, result.ConfirmationSent)
}

func TestCreateOrderEndpointRejectsInvalidSubmission(t *testing.T) {
	app := setupApp(&captureMailer{})

	body := checkoutBody()
	body["items"] = []map[string]interface{}{}

	resp := postJSON(t, app, "/api/orders", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Contains(t, errBody["message"], "Invalid")
}

func TestGetOrderEndpoint(t *testing.T) {
	mailer := &captureMailer{}
	app := setupApp(mailer)

	resp := postJSON(t, app, "/api/orders", checkoutBody())
	var result models.OrderCreationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+result.OrderID, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	var order models.Order
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&order))
	assert.Equal(t, result.OrderID, order.OrderNumber)
	assert.Equal(t, "Maria Perez", order.Customer.Name)
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	app := setupApp(&captureMailer{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/AIR-20240101-ABCD1234", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListOrdersEndpoint(t *testing.T) {
	app := setupApp(&captureMailer{})

	for i := 0; i < 5; i++ {
		resp := postJSON(t, app, "/api/orders", checkoutBody())
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=2&skip=0", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.OrderPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 0, page.Skip)
}

func TestListOrdersEndpointCapsLimit(t *testing.T) {
	app := setupApp(&captureMailer{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=100000", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.OrderPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 200, page.Limit)
}
