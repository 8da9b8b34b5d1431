package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest par (libro, cantidad) de un pedido directo.
type OrderItemRequest struct {
	BookID   string `json:"book_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// ShippingAddress dirección de envío; address y city son obligatorios.
type ShippingAddress struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress ShippingAddress    `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"` // etiqueta opaca
	Notes           string             `json:"notes"`
}

// CreateOrderFromCartRequest body para POST /api/orders/from-cart.
type CreateOrderFromCartRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
}

// UpdateOrderStatusRequest body para PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// ListOrdersRequest query params del listado de pedidos.
// UserID solo surte efecto para admin; a los demás se les fuerza el propio.
type ListOrdersRequest struct {
	UserID string `query:"user_id"`
	Status string `query:"status"`
	PageRequest
}

// OrderLineResponse línea (snapshot) del pedido.
type OrderLineResponse struct {
	BookID   string          `json:"book_id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// StatusEntryResponse entrada del historial de estados.
type StatusEntryResponse struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse pedido completo.
type OrderResponse struct {
	ID              string                `json:"id"`
	OrderNumber     string                `json:"order_number"`
	UserID          string                `json:"user_id"`
	Items           []OrderLineResponse   `json:"items"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	Status          string                `json:"status"`
	StatusHistory   []StatusEntryResponse `json:"status_history,omitempty"`
	ShippingAddress ShippingAddress       `json:"shipping_address"`
	PaymentMethod   string                `json:"payment_method"`
	Notes           string                `json:"notes,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos (solo cabeceras).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderStatsResponse agregados de pedidos.
type OrderStatsResponse struct {
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
}
