package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL (usable con pool o tx).
// La unicidad (user_id, title) vive como constraint de la tabla cart_items.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListByUser devuelve las líneas del carrito en orden de inserción.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error) {
	query := `
		SELECT user_id, title, author, price, description, quantity, COALESCE(book_id::text, ''), added_at
		FROM cart_items WHERE user_id = $1 ORDER BY added_at ASC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartLine
	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, line)
	}
	return list, rows.Err()
}

// Get obtiene una línea por título. Devuelve nil, nil si no existe.
func (r *CartRepo) Get(ctx context.Context, userID, title string) (*entity.CartLine, error) {
	query := `
		SELECT user_id, title, author, price, description, quantity, COALESCE(book_id::text, ''), added_at
		FROM cart_items WHERE user_id = $1 AND title = $2`
	line, err := scanCartLine(r.q.QueryRow(ctx, query, userID, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return line, nil
}

// AddOrIncrement inserta la línea o, si el título ya existe para ese usuario,
// incrementa la cantidad en 1. El precio NO se refresca en el conflicto:
// queda el snapshot del primer agregado.
func (r *CartRepo) AddOrIncrement(ctx context.Context, line *entity.CartLine) error {
	query := `
		INSERT INTO cart_items (user_id, title, author, price, description, quantity, book_id, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8)
		ON CONFLICT (user_id, title)
		DO UPDATE SET quantity = cart_items.quantity + 1`
	_, err := r.q.Exec(ctx, query,
		line.UserID, line.Title, line.Author, line.Price, line.Description,
		line.Quantity, line.BookID, line.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity reemplaza la cantidad de la línea. Devuelve false si el
// título no está en el carrito.
func (r *CartRepo) UpdateQuantity(ctx context.Context, userID, title string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE user_id = $1 AND title = $2`,
		userID, title, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("update cart item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Remove elimina la línea si existe (idempotente).
func (r *CartRepo) Remove(ctx context.Context, userID, title string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND title = $2`, userID, title)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Clear vacía el carrito del usuario.
func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func scanCartLine(row pgxScanner) (*entity.CartLine, error) {
	var line entity.CartLine
	err := row.Scan(
		&line.UserID, &line.Title, &line.Author, &line.Price,
		&line.Description, &line.Quantity, &line.BookID, &line.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return &line, nil
}
