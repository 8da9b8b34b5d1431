package catalog

import (
	"context"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repos de
// catálogo atados a esa tx. Lo usa el borrado forzado de categorías:
// desvincular libros y eliminar la categoría deben ser atómicos.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		categoryRepo repository.CategoryRepository,
	) error) error
}
