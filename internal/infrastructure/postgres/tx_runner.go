package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/order"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// Ensure TxRunner implements order.TxRunner y catalog.TxRunner.
var _ order.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de pedidos
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	bookRepo repository.BookRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookRepo := NewBookRepository(tx)
	orderRepo := NewOrderRepository(tx)
	cartRepo := NewCartRepository(tx)

	if err := fn(bookRepo, orderRepo, cartRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog inicia una transacción con repos de catálogo (borrado forzado
// de categoría: desvincular libros + eliminar en la misma tx).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	bookRepo repository.BookRepository,
	categoryRepo repository.CategoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookRepo := NewBookRepository(tx)
	categoryRepo := NewCategoryRepository(tx)

	if err := fn(bookRepo, categoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
