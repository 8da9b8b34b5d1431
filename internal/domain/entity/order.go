package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s es uno de los seis estados definidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa la cabecera de un pedido. TotalAmount se fija al crear
// (suma de los subtotales de las líneas) y nunca se recalcula, aunque los
// precios de los libros cambien después.
type Order struct {
	ID              string
	OrderNumber     string // ORD-YYYYMMDD-NNNN, único
	UserID          string
	TotalAmount     decimal.Decimal
	Status          string
	ShippingAddress string
	ShippingCity    string
	PaymentMethod   string // etiqueta opaca, no es una integración de pagos
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLine es el snapshot inmutable de una línea del pedido, capturado con
// el precio del libro al momento de crear el pedido.
type OrderLine struct {
	ID       string
	OrderID  string
	BookID   string
	Title    string
	Author   string
	Price    decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal // Price × Quantity
}

// StatusEntry es una entrada del historial de estados (solo se agrega,
// nunca se reescribe).
type StatusEntry struct {
	ID        string
	OrderID   string
	Status    string
	Notes     string
	CreatedAt time.Time
}

// FormatOrderNumber arma el número legible ORD-YYYYMMDD-NNNN a partir del
// día y el consecutivo reservado atómicamente para ese día.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("ORD-%s-%04d", day.Format("20060102"), seq)
}
