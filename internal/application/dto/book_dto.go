package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookRequest entrada para crear un libro.
type CreateBookRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=300"`
	Author      string          `json:"author" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id" validate:"omitempty,uuid"`
	Stock       int             `json:"stock" validate:"min=0"`
}

// UpdateBookRequest entrada para actualizar un libro (campos opcionales;
// Stock no se actualiza por aquí, lo muta solo el motor de pedidos).
type UpdateBookRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=300"`
	Author      *string          `json:"author" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
}

// ListBooksRequest query params del listado de libros.
type ListBooksRequest struct {
	CategoryID string `query:"category"`
	Query      string `query:"q"`
	Sort       string `query:"sort"` // price_asc, price_desc, title_asc, title_desc, newest
	PageRequest
}

// BookResponse salida de un libro.
type BookResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookListResponse lista paginada de libros.
type BookListResponse struct {
	Items []BookResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
