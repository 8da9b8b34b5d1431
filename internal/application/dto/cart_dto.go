package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest entrada para agregar una línea al carrito. BookID es
// opcional: si viene, queda como referencia para el flujo carrito→pedido.
type AddCartItemRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=300"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	BookID      string          `json:"book_id" validate:"omitempty,uuid"`
}

// UpdateCartItemRequest entrada para cambiar la cantidad de una línea.
// Quantity 0 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartLineResponse línea del carrito en respuestas.
type CartLineResponse struct {
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	BookID      string          `json:"book_id,omitempty"`
	AddedAt     time.Time       `json:"added_at"`
}

// CartResponse carrito completo del usuario.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
}
