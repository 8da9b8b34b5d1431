package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta de la librería. El carrito vive como colección
// hija (cart_items) con unicidad por (user_id, title).
type User struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas al persistir
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CartLine es una línea del carrito. La identidad dentro del carrito es el
// título, no el ID del libro: dos libros distintos con el mismo título
// colisionan (peculiaridad heredada del modelo, documentada y no corregida).
type CartLine struct {
	UserID      string
	Title       string
	Author      string
	Price       decimal.Decimal // snapshot al momento de agregar; no se refresca
	Description string
	Quantity    int // >= 1
	BookID      string // referencia opcional al libro, capturada al agregar
	AddedAt     time.Time
}
