package order_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/order"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBookRepo struct {
	mu    sync.Mutex
	books map[string]*entity.Book
}

func newFakeBookRepo(books ...*entity.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[string]*entity.Book)}
	for _, b := range books {
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeBookRepo) Create(b *entity.Book) error { r.books[b.ID] = b; return nil }
func (r *fakeBookRepo) GetByID(id string) (*entity.Book, error) {
	return r.books[id], nil
}
func (r *fakeBookRepo) GetByTitle(title string) (*entity.Book, error) {
	var ids []string
	for id := range r.books {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if r.books[id].Title == title {
			return r.books[id], nil
		}
	}
	return nil, nil
}
func (r *fakeBookRepo) Update(b *entity.Book) error { r.books[b.ID] = b; return nil }
func (r *fakeBookRepo) List(repository.BookFilter, int, int) ([]*entity.Book, int, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) Delete(id string) error                    { delete(r.books, id); return nil }
func (r *fakeBookRepo) CountByCategory(string) (int, error)       { return 0, nil }
func (r *fakeBookRepo) DetachCategory(string) error               { return nil }
func (r *fakeBookRepo) GetForUpdate(_ context.Context, id string) (*entity.Book, error) {
	return r.books[id], nil
}
func (r *fakeBookRepo) DecrementStock(_ context.Context, id string, quantity int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.Stock < quantity {
		return false, nil
	}
	b.Stock -= quantity
	return true, nil
}

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	lines   map[string][]*entity.OrderLine
	history map[string][]*entity.StatusEntry
	counter map[string]int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[string]*entity.Order),
		lines:   make(map[string][]*entity.OrderLine),
		history: make(map[string][]*entity.StatusEntry),
		counter: make(map[string]int),
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}
func (r *fakeOrderRepo) CreateLine(_ context.Context, l *entity.OrderLine) error {
	r.lines[l.OrderID] = append(r.lines[l.OrderID], l)
	return nil
}
func (r *fakeOrderRepo) AppendStatus(_ context.Context, e *entity.StatusEntry) error {
	r.history[e.OrderID] = append(r.history[e.OrderID], e)
	return nil
}
func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID, status string, at time.Time) error {
	if o, ok := r.orders[orderID]; ok {
		o.Status = status
		o.UpdatedAt = at
	}
	return nil
}
func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.orders[id], nil
}
func (r *fakeOrderRepo) GetLinesByOrderID(_ context.Context, orderID string) ([]*entity.OrderLine, error) {
	return r.lines[orderID], nil
}
func (r *fakeOrderRepo) GetHistoryByOrderID(_ context.Context, orderID string) ([]*entity.StatusEntry, error) {
	return r.history[orderID], nil
}
func (r *fakeOrderRepo) List(_ context.Context, filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	var all []*entity.Order
	for _, o := range r.orders {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}
func (r *fakeOrderRepo) Stats(_ context.Context, userID string) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{TotalRevenue: decimal.Zero}
	for _, o := range r.orders {
		if userID != "" && o.UserID != userID {
			continue
		}
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		switch o.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusDelivered:
			stats.CompletedOrders++
		case entity.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats, nil
}
func (r *fakeOrderRepo) NextOrderNumber(_ context.Context, day time.Time) (int, error) {
	key := day.Format("20060102")
	r.counter[key]++
	return r.counter[key], nil
}

type fakeCartRepo struct {
	lines map[string][]*entity.CartLine // userID → líneas
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[string][]*entity.CartLine)}
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]*entity.CartLine, error) {
	return r.lines[userID], nil
}
func (r *fakeCartRepo) Get(_ context.Context, userID, title string) (*entity.CartLine, error) {
	for _, l := range r.lines[userID] {
		if l.Title == title {
			return l, nil
		}
	}
	return nil, nil
}
func (r *fakeCartRepo) AddOrIncrement(_ context.Context, line *entity.CartLine) error {
	for _, l := range r.lines[line.UserID] {
		if l.Title == line.Title {
			l.Quantity++
			return nil
		}
	}
	line.Quantity = 1
	r.lines[line.UserID] = append(r.lines[line.UserID], line)
	return nil
}
func (r *fakeCartRepo) UpdateQuantity(_ context.Context, userID, title string, quantity int) (bool, error) {
	for _, l := range r.lines[userID] {
		if l.Title == title {
			l.Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeCartRepo) Remove(_ context.Context, userID, title string) error {
	kept := r.lines[userID][:0]
	for _, l := range r.lines[userID] {
		if l.Title != title {
			kept = append(kept, l)
		}
	}
	r.lines[userID] = kept
	return nil
}
func (r *fakeCartRepo) Clear(_ context.Context, userID string) error {
	delete(r.lines, userID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error                 { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)     { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(e string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == e {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) { return r.users[id], nil }

// passTxRunner ejecuta el callback directo sobre los fakes, sin transacción.
type passTxRunner struct {
	bookRepo  repository.BookRepository
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func (r *passTxRunner) Run(ctx context.Context, fn func(
	repository.BookRepository, repository.OrderRepository, repository.CartRepository) error,
) error {
	return fn(r.bookRepo, r.orderRepo, r.cartRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	buyerID = "00000000-0000-0000-0000-0000000000aa"
	adminID = "00000000-0000-0000-0000-0000000000bb"
	otherID = "00000000-0000-0000-0000-0000000000cc"

	bookAID = "10000000-0000-0000-0000-000000000001"
	bookBID = "10000000-0000-0000-0000-000000000002"
)

type fixture struct {
	uc        *order.OrderUseCase
	bookRepo  *fakeBookRepo
	orderRepo *fakeOrderRepo
	cartRepo  *fakeCartRepo
	userRepo  *fakeUserRepo
}

func newFixture() *fixture {
	bookRepo := newFakeBookRepo(
		&entity.Book{ID: bookAID, Title: "Cien años de soledad", Author: "García Márquez",
			Price: decimal.RequireFromString("65000"), Stock: 10},
		&entity.Book{ID: bookBID, Title: "Sapiens", Author: "Harari",
			Price: decimal.RequireFromString("72000"), Stock: 3},
	)
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: buyerID, Email: "lectora@booktree.local", Role: entity.RoleUser},
		&entity.User{ID: adminID, Email: "admin@booktree.local", Role: entity.RoleAdmin},
		&entity.User{ID: otherID, Email: "otro@booktree.local", Role: entity.RoleUser},
	)
	tx := &passTxRunner{bookRepo: bookRepo, orderRepo: orderRepo, cartRepo: cartRepo}
	return &fixture{
		uc:        order.NewOrderUseCase(tx, orderRepo, cartRepo, bookRepo, userRepo),
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
	}
}

func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{BookID: bookAID, Quantity: 2},
			{BookID: bookBID, Quantity: 1},
		},
		ShippingAddress: dto.ShippingAddress{Address: "Calle 10 # 5-51", City: "Bogotá"},
		PaymentMethod:   "contraentrega",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_TotalYSnapshot(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateOrder(context.Background(), buyerID, validRequest())
	require.NoError(t, err)

	// total = 2×65000 + 1×72000
	assert.True(t, decimal.RequireFromString("202000").Equal(out.TotalAmount),
		"el total debe ser la suma de precio×cantidad, fue %s", out.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Cien años de soledad", out.Items[0].Title)
	assert.True(t, decimal.RequireFromString("130000").Equal(out.Items[0].Subtotal))

	// historial inicia con una sola entrada pending
	require.Len(t, out.StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusPending, out.StatusHistory[0].Status)
}

func TestCreateOrder_NumeroConsecutivoPorDia(t *testing.T) {
	f := newFixture()
	today := time.Now().Format("20060102")

	first, err := f.uc.CreateOrder(context.Background(), buyerID, validRequest())
	require.NoError(t, err)
	second, err := f.uc.CreateOrder(context.Background(), buyerID, dto.CreateOrderRequest{
		Items:           []dto.OrderItemRequest{{BookID: bookAID, Quantity: 1}},
		ShippingAddress: dto.ShippingAddress{Address: "Calle 10", City: "Bogotá"},
		PaymentMethod:   "tarjeta",
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-"+today+"-0001", first.OrderNumber)
	assert.Equal(t, "ORD-"+today+"-0002", second.OrderNumber)
}

func TestCreateOrder_DescuentaStockYVaciaCarrito(t *testing.T) {
	f := newFixture()
	f.cartRepo.lines[buyerID] = []*entity.CartLine{
		{UserID: buyerID, Title: "Sapiens", Quantity: 1},
	}

	_, err := f.uc.CreateOrder(context.Background(), buyerID, validRequest())
	require.NoError(t, err)

	assert.Equal(t, 8, f.bookRepo.books[bookAID].Stock, "stock de A: 10 - 2")
	assert.Equal(t, 2, f.bookRepo.books[bookBID].Stock, "stock de B: 3 - 1")
	assert.Empty(t, f.cartRepo.lines[buyerID], "el carrito debe quedar vacío")
}

func TestCreateOrder_StockInsuficiente_NoDejaEstadoParcial(t *testing.T) {
	f := newFixture()
	f.cartRepo.lines[buyerID] = []*entity.CartLine{
		{UserID: buyerID, Title: "Sapiens", Quantity: 1},
	}

	in := validRequest()
	in.Items[1].Quantity = 5 // Sapiens solo tiene 3

	_, err := f.uc.CreateOrder(context.Background(), buyerID, in)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Sapiens", "el error debe nombrar el libro")
	assert.Contains(t, err.Error(), "3", "el error debe indicar lo disponible")
	assert.Contains(t, err.Error(), "5", "el error debe indicar lo pedido")

	// La validación corre antes del decremento: nada cambió.
	assert.Equal(t, 10, f.bookRepo.books[bookAID].Stock)
	assert.Equal(t, 3, f.bookRepo.books[bookBID].Stock)
	assert.Empty(t, f.orderRepo.orders, "no debe quedar pedido creado")
	assert.Len(t, f.cartRepo.lines[buyerID], 1, "el carrito debe quedar intacto")
}

func TestCreateOrder_LibroInexistente(t *testing.T) {
	f := newFixture()

	in := validRequest()
	in.Items[0].BookID = "10000000-0000-0000-0000-00000000dead"

	_, err := f.uc.CreateOrder(context.Background(), buyerID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		mut  func(*dto.CreateOrderRequest)
	}{
		{"sin ítems", func(in *dto.CreateOrderRequest) { in.Items = nil }},
		{"cantidad cero", func(in *dto.CreateOrderRequest) { in.Items[0].Quantity = 0 }},
		{"sin book_id", func(in *dto.CreateOrderRequest) { in.Items[0].BookID = "" }},
		{"sin dirección", func(in *dto.CreateOrderRequest) { in.ShippingAddress.Address = "" }},
		{"sin ciudad", func(in *dto.CreateOrderRequest) { in.ShippingAddress.City = "" }},
		{"sin método de pago", func(in *dto.CreateOrderRequest) { in.PaymentMethod = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRequest()
			tc.mut(&in)
			_, err := f.uc.CreateOrder(ctx, buyerID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrderFromCart
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrderFromCart_CarritoVacio(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateOrderFromCart(context.Background(), buyerID, dto.CreateOrderFromCartRequest{
		ShippingAddress: dto.ShippingAddress{Address: "Calle 10", City: "Bogotá"},
		PaymentMethod:   "tarjeta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrderFromCart_UsaBookIDYFallbackPorTitulo(t *testing.T) {
	f := newFixture()
	f.cartRepo.lines[buyerID] = []*entity.CartLine{
		// con referencia directa
		{UserID: buyerID, Title: "Cien años de soledad", Quantity: 2, BookID: bookAID},
		// sin book_id: se resuelve por título
		{UserID: buyerID, Title: "Sapiens", Quantity: 1},
	}

	out, err := f.uc.CreateOrderFromCart(context.Background(), buyerID, dto.CreateOrderFromCartRequest{
		ShippingAddress: dto.ShippingAddress{Address: "Calle 10", City: "Bogotá"},
		PaymentMethod:   "tarjeta",
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	// el precio sale del libro vivo, no de la línea del carrito
	assert.True(t, decimal.RequireFromString("202000").Equal(out.TotalAmount))
	assert.Equal(t, 8, f.bookRepo.books[bookAID].Stock)
	assert.Equal(t, 2, f.bookRepo.books[bookBID].Stock)
	assert.Empty(t, f.cartRepo.lines[buyerID])
}

func TestCreateOrderFromCart_TituloSinLibro(t *testing.T) {
	f := newFixture()
	f.cartRepo.lines[buyerID] = []*entity.CartLine{
		{UserID: buyerID, Title: "Libro que no está en catálogo", Quantity: 1},
	}

	_, err := f.uc.CreateOrderFromCart(context.Background(), buyerID, dto.CreateOrderFromCartRequest{
		ShippingAddress: dto.ShippingAddress{Address: "Calle 10", City: "Bogotá"},
		PaymentMethod:   "tarjeta",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus — matriz de permisos
// ──────────────────────────────────────────────────────────────────────────────

func createPendingOrder(t *testing.T, f *fixture) string {
	t.Helper()
	out, err := f.uc.CreateOrder(context.Background(), buyerID, validRequest())
	require.NoError(t, err)
	return out.ID
}

func TestUpdateStatus_AdminPuedeCualquierEstado(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)

	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	} {
		out, err := f.uc.UpdateStatus(context.Background(), adminID, orderID,
			dto.UpdateOrderStatusRequest{Status: status, Notes: "avance"})
		require.NoError(t, err, "admin debe poder fijar %s", status)
		assert.Equal(t, status, out.Status)
	}

	// el historial acumula: pending + 4 transiciones
	history, err := f.orderRepo.GetHistoryByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Len(t, history, 5, "el historial es append-only")
}

func TestUpdateStatus_DuenoSoloCancelaPendiente(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)

	// el dueño no puede confirmar
	_, err := f.uc.UpdateStatus(context.Background(), buyerID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// pero sí cancelar mientras está pending
	out, err := f.uc.UpdateStatus(context.Background(), buyerID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled, Notes: "me arrepentí"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
}

func TestUpdateStatus_DuenoNoCancelaDespachado(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)

	_, err := f.uc.UpdateStatus(context.Background(), adminID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusShipped})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), buyerID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"fuera de pending solo un admin puede cancelar")
}

func TestUpdateStatus_OtroUsuarioBloqueado(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)

	_, err := f.uc.UpdateStatus(context.Background(), otherID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)

	_, err := f.uc.UpdateStatus(context.Background(), adminID, orderID,
		dto.UpdateOrderStatusRequest{Status: "enviado-tal-vez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetOrder / ListOrders / GetStats — propiedad del recurso
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_SoloDuenoOAdmin(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)
	ctx := context.Background()

	_, err := f.uc.GetOrder(ctx, buyerID, orderID)
	assert.NoError(t, err, "el dueño puede leer su pedido")

	_, err = f.uc.GetOrder(ctx, adminID, orderID)
	assert.NoError(t, err, "un admin puede leer cualquier pedido")

	_, err = f.uc.GetOrder(ctx, otherID, orderID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListOrders_NoAdminQuedaAcotadoASimismo(t *testing.T) {
	f := newFixture()
	createPendingOrder(t, f)
	ctx := context.Background()

	// el no-admin pide los pedidos de otro usuario; el filtro se ignora
	out, err := f.uc.ListOrders(ctx, otherID, dto.ListOrdersRequest{UserID: buyerID})
	require.NoError(t, err)
	assert.Empty(t, out.Items, "un no-admin solo ve sus propios pedidos")

	// el admin sí puede filtrar por cualquier usuario
	out, err = f.uc.ListOrders(ctx, adminID, dto.ListOrdersRequest{UserID: buyerID})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Total)
}

func TestGetStats_Alcance(t *testing.T) {
	f := newFixture()
	orderID := createPendingOrder(t, f)
	ctx := context.Background()

	_, err := f.uc.UpdateStatus(ctx, adminID, orderID,
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)

	// no-admin: siempre sus propios agregados, aunque pida los de otro
	stats, err := f.uc.GetStats(ctx, otherID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)

	// admin con target puntual
	stats, err = f.uc.GetStats(ctx, adminID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.CompletedOrders, "completado = entregado")
	assert.True(t, decimal.RequireFromString("202000").Equal(stats.TotalRevenue))

	// admin global (target vacío)
	stats, err = f.uc.GetStats(ctx, adminID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
}

// El formato del consecutivo siempre rellena a cuatro dígitos.
func TestFormatOrderNumber_Relleno(t *testing.T) {
	day := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20260309-0007", entity.FormatOrderNumber(day, 7))
	assert.Equal(t, "ORD-20260309-0123", entity.FormatOrderNumber(day, 123))
	assert.True(t, strings.HasPrefix(entity.FormatOrderNumber(day, 12345), "ORD-20260309-"))
}
