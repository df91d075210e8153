package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/orderdesk/orderdesk/internal/transport/http/handler"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

type fakeOrderUsecase struct {
	submitOrder func(ctx context.Context, input usecase.SubmitOrderInput) (*domain.Order, error)
	listOrders  func(ctx context.Context) ([]*domain.Order, error)
}

func (f *fakeOrderUsecase) SubmitOrder(ctx context.Context, input usecase.SubmitOrderInput) (*domain.Order, error) {
	return f.submitOrder(ctx, input)
}

func (f *fakeOrderUsecase) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return f.listOrders(ctx)
}

func newOrderEngine(uc *fakeOrderUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewOrderHandler(uc, logger)

	r := gin.New()
	r.POST("/orders", h.Create)
	r.GET("/orders", h.List)
	return r
}

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validOrderBody = `{
	"customer_name": "Ann",
	"phone": "555",
	"address": "1 Rd",
	"quantity": 2,
	"color": "red",
	"payment_method": "cash",
	"total_amount": 19.98
}`

// ---- Create ----

func TestCreateOrder_InvalidJSON_Returns400(t *testing.T) {
	uc := &fakeOrderUsecase{}
	w := postOrder(newOrderEngine(uc), `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrder_ZeroQuantity_Returns400(t *testing.T) {
	uc := &fakeOrderUsecase{}
	w := postOrder(newOrderEngine(uc),
		`{"customer_name":"Ann","phone":"555","address":"1 Rd","quantity":0,"color":"red","payment_method":"cash","total_amount":19.98}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrder_NegativeTotal_Returns400(t *testing.T) {
	uc := &fakeOrderUsecase{}
	w := postOrder(newOrderEngine(uc),
		`{"customer_name":"Ann","phone":"555","address":"1 Rd","quantity":2,"color":"red","payment_method":"cash","total_amount":-1}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrder_MissingCustomerName_Returns400(t *testing.T) {
	uc := &fakeOrderUsecase{}
	w := postOrder(newOrderEngine(uc),
		`{"phone":"555","address":"1 Rd","quantity":2,"color":"red","payment_method":"cash","total_amount":19.98}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateOrder_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeOrderUsecase{
		submitOrder: func(_ context.Context, _ usecase.SubmitOrderInput) (*domain.Order, error) {
			return nil, errors.New("db down")
		},
	}
	w := postOrder(newOrderEngine(uc), validOrderBody)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCreateOrder_Success_EchoesStoredRecord(t *testing.T) {
	createdAt := time.Now().UTC().Truncate(time.Second)
	uc := &fakeOrderUsecase{
		submitOrder: func(_ context.Context, input usecase.SubmitOrderInput) (*domain.Order, error) {
			return &domain.Order{
				ID:            42,
				CustomerName:  input.CustomerName,
				Phone:         input.Phone,
				Address:       input.Address,
				Quantity:      input.Quantity,
				Color:         input.Color,
				PaymentMethod: input.PaymentMethod,
				TotalAmount:   input.TotalAmount,
				Status:        domain.StatusPending,
				CreatedAt:     createdAt,
			}, nil
		},
	}
	w := postOrder(newOrderEngine(uc), validOrderBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != float64(42) {
		t.Errorf("id = %v, want 42", resp["id"])
	}
	if resp["status"] != domain.StatusPending {
		t.Errorf("status = %v, want %q", resp["status"], domain.StatusPending)
	}
	if resp["customer_name"] != "Ann" {
		t.Errorf("customer_name = %v, want Ann", resp["customer_name"])
	}
	if resp["created_at"] == nil || resp["created_at"] == "" {
		t.Error("created_at missing from response")
	}
}

// ---- List ----

func TestListOrders_Returns500OnUsecaseError(t *testing.T) {
	uc := &fakeOrderUsecase{
		listOrders: func(_ context.Context) ([]*domain.Order, error) {
			return nil, errors.New("db down")
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	newOrderEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestListOrders_Empty_ReturnsEmptyArray(t *testing.T) {
	uc := &fakeOrderUsecase{
		listOrders: func(_ context.Context) ([]*domain.Order, error) { return nil, nil },
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	newOrderEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestListOrders_ReturnsAllRecords(t *testing.T) {
	uc := &fakeOrderUsecase{
		listOrders: func(_ context.Context) ([]*domain.Order, error) {
			return []*domain.Order{
				{ID: 1, CustomerName: "Ann", Status: domain.StatusPending},
				{ID: 2, CustomerName: "Bob", Status: domain.StatusPending},
			}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	newOrderEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("len = %d, want 2", len(resp))
	}
	if resp[0]["id"] != float64(1) || resp[1]["id"] != float64(2) {
		t.Errorf("ids = %v, %v; want 1, 2", resp[0]["id"], resp[1]["id"])
	}
}
