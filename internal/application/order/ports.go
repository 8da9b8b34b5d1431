package order

import (
	"context"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// pedidos: validación de stock, decremento, cabecera, líneas, historial y
// vaciado del carrito viven o mueren juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
	) error) error
}

// ReceiptGenerator genera la representación en PDF del recibo de un pedido.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, user *entity.User, lines []*entity.OrderLine) ([]byte, error)
}
