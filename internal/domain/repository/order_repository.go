package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos.
type OrderFilter struct {
	UserID string // vacío = todos (solo admin)
	Status string
}

// OrderStats agregados de pedidos (por usuario o globales).
type OrderStats struct {
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	PendingOrders   int
	CompletedOrders int // entregados
	CancelledOrders int
}

// OrderRepository define el puerto de persistencia para Order, sus líneas
// y su historial de estados.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateLine(ctx context.Context, line *entity.OrderLine) error
	// AppendStatus agrega una entrada al historial; el historial nunca se reescribe.
	AppendStatus(ctx context.Context, entry *entity.StatusEntry) error
	UpdateStatus(ctx context.Context, orderID, status string, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetLinesByOrderID(ctx context.Context, orderID string) ([]*entity.OrderLine, error)
	GetHistoryByOrderID(ctx context.Context, orderID string) ([]*entity.StatusEntry, error)
	// List devuelve la página (más reciente primero) y el total de coincidencias.
	List(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, int, error)
	// Stats agrega totales; userID vacío = global.
	Stats(ctx context.Context, userID string) (*OrderStats, error)
	// NextOrderNumber reserva el siguiente consecutivo del día de forma
	// atómica (contador incrementado en la misma transacción del pedido).
	NextOrderNumber(ctx context.Context, day time.Time) (int, error)
}
