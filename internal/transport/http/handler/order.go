package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/domain"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

// orderUsecaser is the subset of OrderUsecase the handler needs.
type orderUsecaser interface {
	SubmitOrder(ctx context.Context, input usecase.SubmitOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

type OrderHandler struct {
	orderUsecase orderUsecaser
	logger       *slog.Logger
}

func NewOrderHandler(orderUsecase orderUsecaser, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		logger:       logger.With("component", "order_handler"),
	}
}

// The source system accepted order fields without bounds; here quantity must
// be positive and total_amount non-negative, enforced at the binding layer.
type createOrderRequest struct {
	CustomerName  string  `json:"customer_name"  binding:"required"`
	Phone         string  `json:"phone"          binding:"required"`
	Address       string  `json:"address"        binding:"required"`
	Quantity      int     `json:"quantity"       binding:"required,gt=0"`
	Color         string  `json:"color"          binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TotalAmount   float64 `json:"total_amount"   binding:"gte=0"`
}

type orderResponse struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Quantity      int       `json:"quantity"`
	Color         string    `json:"color"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		Quantity:      o.Quantity,
		Color:         o.Color,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

// POST /orders
// Unauthenticated; echoes the stored record including the assigned id,
// default status and creation timestamp.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUsecase.SubmitOrder(c.Request.Context(), usecase.SubmitOrderInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Quantity:      req.Quantity,
		Color:         req.Color,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "submit order", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// GET /orders
// Requires a valid bearer token; returns every stored order.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderUsecase.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}
