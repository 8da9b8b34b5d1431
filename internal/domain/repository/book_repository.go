package repository

import (
	"context"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
)

// Selectores de orden para el listado de libros.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitleAsc  = "title_asc"
	SortTitleDesc = "title_desc"
	SortNewest    = "newest"
)

// BookFilter filtros del listado de libros.
type BookFilter struct {
	CategoryID string
	Query      string // substring case-insensitive sobre title, author y description (OR)
	Sort       string // uno de los selectores Sort*; vacío = newest
}

// BookRepository define el puerto de persistencia para Book (DIP).
type BookRepository interface {
	Create(book *entity.Book) error
	GetByID(id string) (*entity.Book, error)
	// GetByTitle devuelve la primera coincidencia exacta por título; es el
	// fallback del flujo carrito→pedido cuando la línea no trae book_id.
	GetByTitle(title string) (*entity.Book, error)
	Update(book *entity.Book) error
	// List devuelve la página y el total de coincidencias del filtro.
	List(filter BookFilter, limit, offset int) ([]*entity.Book, int, error)
	Delete(id string) error
	CountByCategory(categoryID string) (int, error)
	// DetachCategory limpia la referencia de categoría de todos los libros
	// dependientes (borrado forzado de categoría: desvincular, no cascada).
	DetachCategory(categoryID string) error

	// Motor de pedidos: deben ejecutarse dentro de la transacción del pedido.
	GetForUpdate(ctx context.Context, id string) (*entity.Book, error)
	// DecrementStock descuenta stock solo si alcanza (stock >= quantity).
	// Devuelve false cuando la condición no se cumple (0 filas afectadas).
	DecrementStock(ctx context.Context, id string, quantity int) (bool, error)
}
