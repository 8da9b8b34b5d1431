package repository

import (
	"context"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para las líneas del
// carrito (colección hija de User, única por user_id + title).
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error)
	Get(ctx context.Context, userID, title string) (*entity.CartLine, error)
	// AddOrIncrement inserta la línea con cantidad 1 o, si el título ya
	// existe para el usuario, incrementa su cantidad en 1 sin refrescar el precio.
	AddOrIncrement(ctx context.Context, line *entity.CartLine) error
	// UpdateQuantity reemplaza la cantidad. Devuelve false si el título no existe.
	UpdateQuantity(ctx context.Context, userID, title string, quantity int) (bool, error)
	// Remove es idempotente: no falla si el título no está en el carrito.
	Remove(ctx context.Context, userID, title string) error
	Clear(ctx context.Context, userID string) error
}
