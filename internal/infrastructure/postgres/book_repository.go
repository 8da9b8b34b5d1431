package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación del puerto BookRepository sobre PostgreSQL
// (usable con pool o tx).
type BookRepo struct {
	q Querier
}

// NewBookRepository construye el adaptador de persistencia para libros.
// Pasar pool o tx (Querier).
func NewBookRepository(q Querier) *BookRepo {
	return &BookRepo{q: q}
}

const bookColumns = `id, title, author, description, price, COALESCE(category_id::text, ''), stock, created_at, updated_at`

// Create persiste un nuevo libro.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (id, title, author, description, price, category_id, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		book.ID, book.Title, book.Author, book.Description, book.Price,
		book.CategoryID, book.Stock, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID. Devuelve nil, nil si no existe.
func (r *BookRepo) GetByID(id string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// GetByTitle devuelve la primera coincidencia exacta por título (fallback
// del flujo carrito→pedido). Con títulos repetidos puede devolver un libro
// distinto al que se agregó al carrito.
func (r *BookRepo) GetByTitle(title string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE title = $1 ORDER BY created_at ASC LIMIT 1`
	b, err := scanBook(r.q.QueryRow(context.Background(), query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book by title: %w", err)
	}
	return b, nil
}

// Update actualiza un libro. Stock NO se toca aquí: solo lo muta el motor
// de pedidos vía DecrementStock.
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET title = $2, author = $3, description = $4, price = $5,
			category_id = NULLIF($6, '')::uuid, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		book.ID, book.Title, book.Author, book.Description, book.Price,
		book.CategoryID, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// List devuelve la página de libros según filtro y el total de coincidencias.
// El selector de orden se mapea contra una lista blanca (nunca se interpola
// entrada del cliente en el ORDER BY).
func (r *BookRepo) List(filter repository.BookFilter, limit, offset int) ([]*entity.Book, int, error) {
	var conds []string
	var args []any
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM books`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	orderBy := orderByFor(filter.Sort)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM books%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		bookColumns, where, orderBy, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// orderByFor mapea el selector de orden a la cláusula SQL (lista blanca).
func orderByFor(sort string) string {
	switch sort {
	case repository.SortPriceAsc:
		return "price ASC"
	case repository.SortPriceDesc:
		return "price DESC"
	case repository.SortTitleAsc:
		return "title ASC"
	case repository.SortTitleDesc:
		return "title DESC"
	default: // newest
		return "created_at DESC"
	}
}

// Delete elimina un libro por ID.
func (r *BookRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// CountByCategory cuenta los libros que referencian una categoría.
func (r *BookRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM books WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count books by category: %w", err)
	}
	return n, nil
}

// DetachCategory limpia la referencia de categoría de los libros dependientes
// (borrado forzado: desvincular, no eliminar los libros).
func (r *BookRepo) DetachCategory(categoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE books SET category_id = NULL, updated_at = now() WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("detach category from books: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el libro y bloquea la fila (SELECT FOR UPDATE).
// Debe llamarse dentro de la transacción del pedido.
func (r *BookRepo) GetForUpdate(ctx context.Context, id string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`
	b, err := scanBook(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book for update: %w", err)
	}
	return b, nil
}

// DecrementStock descuenta stock de forma condicional: solo si alcanza.
// Devuelve false con 0 filas afectadas; el caller debe hacer rollback de
// todo el pedido en ese caso.
func (r *BookRepo) DecrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE books SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanBook(row pgxScanner) (*entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.Price,
		&b.CategoryID, &b.Stock, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
