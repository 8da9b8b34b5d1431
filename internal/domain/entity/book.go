package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book representa un libro del catálogo. Stock solo lo muta el motor de
// pedidos (decremento condicional al crear un pedido).
type Book struct {
	ID          string
	Title       string
	Author      string
	Description string
	Price       decimal.Decimal // > 0
	CategoryID  string          // vacío si el libro quedó sin categoría
	Stock       int             // >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
