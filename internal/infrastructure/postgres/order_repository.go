package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, user_id, total_amount, status,
	shipping_address, shipping_city, payment_method, notes, created_at, updated_at`

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, user_id, total_amount, status,
			shipping_address, shipping_city, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNumber, order.UserID, order.TotalAmount, order.Status,
		order.ShippingAddress, order.ShippingCity, order.PaymentMethod, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // order_number repetido
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea (snapshot inmutable) del pedido.
func (r *OrderRepo) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		INSERT INTO order_items (id, order_id, book_id, title, author, price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.OrderID, line.BookID, line.Title, line.Author,
		line.Price, line.Quantity, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// AppendStatus agrega una entrada al historial de estados (append-only).
func (r *OrderRepo) AppendStatus(ctx context.Context, entry *entity.StatusEntry) error {
	query := `
		INSERT INTO order_status_history (id, order_id, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.OrderID, entry.Status, entry.Notes, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert status entry: %w", err)
	}
	return nil
}

// UpdateStatus actualiza el estado actual de la cabecera.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, status string, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		orderID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetLinesByOrderID devuelve las líneas del pedido en orden de inserción.
func (r *OrderRepo) GetLinesByOrderID(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, book_id, title, author, price, quantity, subtotal
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.BookID, &l.Title, &l.Author,
			&l.Price, &l.Quantity, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetHistoryByOrderID devuelve el historial de estados en orden cronológico.
func (r *OrderRepo) GetHistoryByOrderID(ctx context.Context, orderID string) ([]*entity.StatusEntry, error) {
	query := `
		SELECT id, order_id, status, notes, created_at
		FROM order_status_history WHERE order_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StatusEntry
	for rows.Next() {
		var e entity.StatusEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// List devuelve la página de pedidos (más reciente primero) y el total.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	var conds []string
	var args []any
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	for i, c := range conds {
		if i == 0 {
			where = " WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

// Stats agrega totales de pedidos; userID vacío = global (solo admin).
func (r *OrderRepo) Stats(ctx context.Context, userID string) (*repository.OrderStats, error) {
	query := `
		SELECT count(*),
		       COALESCE(sum(total_amount), 0),
		       count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'delivered'),
		       count(*) FILTER (WHERE status = 'cancelled')
		FROM orders`
	var args []any
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	var s repository.OrderStats
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.TotalOrders, &revenue, &s.PendingOrders, &s.CompletedOrders, &s.CancelledOrders)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	s.TotalRevenue = revenue
	return &s, nil
}

// NextOrderNumber reserva el consecutivo del día con un upsert-incremento
// atómico sobre order_counters. Llamado dentro de la transacción del pedido,
// garantiza números únicos bajo creación concurrente (reemplaza el esquema
// contar-y-formatear, que podía duplicar números).
func (r *OrderRepo) NextOrderNumber(ctx context.Context, day time.Time) (int, error) {
	query := `
		INSERT INTO order_counters (day, value)
		VALUES ($1, 1)
		ON CONFLICT (day)
		DO UPDATE SET value = order_counters.value + 1
		RETURNING value`
	var seq int
	if err := r.q.QueryRow(ctx, query, day.Format("2006-01-02")).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return seq, nil
}

func scanOrder(row pgxScanner) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.TotalAmount, &o.Status,
		&o.ShippingAddress, &o.ShippingCity, &o.PaymentMethod, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
