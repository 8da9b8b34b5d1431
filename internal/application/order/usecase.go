package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// Nota inicial del historial de estados de todo pedido nuevo.
const initialStatusNote = "Order created"

// OrderUseCase es el motor de pedidos: crea pedidos contra stock vivo de
// forma transaccional (bloqueo de fila + decremento condicional + contador
// atómico de consecutivos), administra transiciones de estado y expone
// listados y agregados con las reglas de propiedad del recurso.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	bookRepo  repository.BookRepository
	userRepo  repository.UserRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
	}
}

// resolveActor re-consulta el usuario en la BD. El rol nunca se toma del
// token: una degradación de rol aplica en la siguiente petición.
func (uc *OrderUseCase) resolveActor(userID string) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// CreateOrder valida los pares (libro, cantidad) contra stock vivo, calcula
// el total, persiste el snapshot inmutable de líneas, descuenta stock,
// registra la primera entrada del historial y vacía el carrito, todo dentro
// de UNA transacción:
//
//   - Cada libro se lee con SELECT FOR UPDATE, así la validación y el
//     decremento ven la misma fila bloqueada (sin carrera check/decrement).
//   - El decremento es condicional (stock >= cantidad); 0 filas afectadas
//     revierte el pedido completo, sin estado parcial.
//   - El consecutivo del número de pedido sale de un contador por día
//     incrementado atómicamente en la misma transacción (sin duplicados
//     bajo creación concurrente).
//
// Cualquier fallo deja la BD como estaba: sin pedido, sin decremento y con
// el carrito intacto.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene ítems", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.BookID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: cada ítem requiere book_id y cantidad positiva", domain.ErrInvalidInput)
		}
	}
	if in.ShippingAddress.Address == "" || in.ShippingAddress.City == "" {
		return nil, fmt.Errorf("%w: la dirección de envío requiere address y city", domain.ErrInvalidInput)
	}
	if in.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment_method es requerido", domain.ErrInvalidInput)
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		ShippingAddress: in.ShippingAddress.Address,
		ShippingCity:    in.ShippingAddress.City,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	var lines []*entity.OrderLine

	err := uc.txRunner.Run(ctx, func(
		bookRepo repository.BookRepository,
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
	) error {
		// 1) Validar contra stock vivo y armar el snapshot de líneas.
		// GetForUpdate bloquea la fila del libro hasta el commit.
		total := decimal.Zero
		lines = lines[:0]
		for _, item := range in.Items {
			book, err := bookRepo.GetForUpdate(ctx, item.BookID)
			if err != nil {
				return err
			}
			if book == nil {
				return fmt.Errorf("%w: libro %s", domain.ErrNotFound, item.BookID)
			}
			if book.Stock < item.Quantity {
				return fmt.Errorf("%w: %q tiene %d disponible(s), se pidieron %d",
					domain.ErrInsufficientStock, book.Title, book.Stock, item.Quantity)
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			subtotal := book.Price.Mul(qty)
			total = total.Add(subtotal)
			lines = append(lines, &entity.OrderLine{
				ID:       uuid.New().String(),
				OrderID:  order.ID,
				BookID:   book.ID,
				Title:    book.Title,
				Author:   book.Author,
				Price:    book.Price,
				Quantity: item.Quantity,
				Subtotal: subtotal,
			})
		}
		order.TotalAmount = total

		// 2) Decremento condicional por línea; la fila sigue bloqueada, pero
		// la condición stock >= cantidad se mantiene como guarda del pedido.
		for _, line := range lines {
			ok, err := bookRepo.DecrementStock(ctx, line.BookID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrInsufficientStock, line.Title)
			}
		}

		// 3) Número de pedido: consecutivo del día reservado atómicamente.
		seq, err := orderRepo.NextOrderNumber(ctx, now)
		if err != nil {
			return err
		}
		order.OrderNumber = entity.FormatOrderNumber(now, seq)

		// 4) Persistir cabecera, líneas y primera entrada del historial.
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, line := range lines {
			if err := orderRepo.CreateLine(ctx, line); err != nil {
				return err
			}
		}
		if err := orderRepo.AppendStatus(ctx, &entity.StatusEntry{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Status:    entity.OrderStatusPending,
			Notes:     initialStatusNote,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		// 5) Vaciar el carrito del comprador (misma transacción).
		return cartRepo.Clear(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(order, lines)
	resp.StatusHistory = []dto.StatusEntryResponse{{
		Status:    entity.OrderStatusPending,
		Notes:     initialStatusNote,
		Timestamp: now,
	}}
	return resp, nil
}

// CreateOrderFromCart mapea el carrito a pares (libro, cantidad) y delega
// en CreateOrder. Cada línea usa su book_id capturado al agregar; si no lo
// tiene, se resuelve por título (primera coincidencia) — con títulos
// repetidos ese fallback puede apuntar al libro equivocado, peculiaridad
// heredada que se conserva documentada.
func (uc *OrderUseCase) CreateOrderFromCart(ctx context.Context, userID string, in dto.CreateOrderFromCartRequest) (*dto.OrderResponse, error) {
	cartLines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartLines) == 0 {
		return nil, fmt.Errorf("%w: el carrito está vacío", domain.ErrInvalidInput)
	}
	items := make([]dto.OrderItemRequest, 0, len(cartLines))
	for _, line := range cartLines {
		bookID := line.BookID
		if bookID == "" {
			book, err := uc.bookRepo.GetByTitle(line.Title)
			if err != nil {
				return nil, err
			}
			if book == nil {
				return nil, fmt.Errorf("%w: libro %q", domain.ErrNotFound, line.Title)
			}
			bookID = book.ID
		}
		items = append(items, dto.OrderItemRequest{BookID: bookID, Quantity: line.Quantity})
	}
	return uc.CreateOrder(ctx, userID, dto.CreateOrderRequest{
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
	})
}

// UpdateStatus transiciona el estado de un pedido y agrega la entrada al
// historial (append-only, nunca se reescribe). Reglas: admin puede fijar
// cualquier estado; el dueño solo puede cancelar su propio pedido y solo
// mientras está en pending. Todo lo demás es ErrForbidden.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actorID, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado %q no existe", domain.ErrInvalidInput, in.Status)
	}
	actor, err := uc.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin {
		if ord.UserID != actor.ID {
			return nil, domain.ErrForbidden
		}
		if in.Status != entity.OrderStatusCancelled || ord.Status != entity.OrderStatusPending {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		_ repository.BookRepository,
		orderRepo repository.OrderRepository,
		_ repository.CartRepository,
	) error {
		if err := orderRepo.AppendStatus(ctx, &entity.StatusEntry{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			Status:    in.Status,
			Notes:     in.Notes,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		return orderRepo.UpdateStatus(ctx, ord.ID, in.Status, now)
	})
	if err != nil {
		return nil, err
	}
	ord.Status = in.Status
	ord.UpdatedAt = now
	return uc.loadFullOrder(ctx, ord)
}

// GetOrder devuelve un pedido completo (líneas + historial). Solo el dueño
// o un admin pueden leerlo.
func (uc *OrderUseCase) GetOrder(ctx context.Context, actorID, orderID string) (*dto.OrderResponse, error) {
	actor, err := uc.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && ord.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return uc.loadFullOrder(ctx, ord)
}

// ListOrders devuelve la página de pedidos, más reciente primero. A un
// no-admin se le fuerza el filtro a su propio userID, venga lo que venga en
// la petición; un admin puede filtrar por cualquier usuario u omitirlo.
func (uc *OrderUseCase) ListOrders(ctx context.Context, actorID string, in dto.ListOrdersRequest) (*dto.OrderListResponse, error) {
	actor, err := uc.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	in.DefaultPage()
	filter := repository.OrderFilter{UserID: in.UserID, Status: in.Status}
	if actor.Role != entity.RoleAdmin {
		filter.UserID = actor.ID
	}
	orders, total, err := uc.orderRepo.List(ctx, filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.NewPageResponse(in.Page, in.Limit, total),
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o, nil))
	}
	return out, nil
}

// GetStats agrega totales de pedidos. Un no-admin siempre queda acotado a
// sus propios pedidos; un admin puede pedir los de un usuario puntual o los
// globales (target vacío).
func (uc *OrderUseCase) GetStats(ctx context.Context, actorID, targetUserID string) (*dto.OrderStatsResponse, error) {
	actor, err := uc.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	scope := targetUserID
	if actor.Role != entity.RoleAdmin {
		scope = actor.ID
	}
	stats, err := uc.orderRepo.Stats(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		CancelledOrders: stats.CancelledOrders,
	}, nil
}

// loadFullOrder completa la respuesta con líneas e historial.
func (uc *OrderUseCase) loadFullOrder(ctx context.Context, ord *entity.Order) (*dto.OrderResponse, error) {
	lines, err := uc.orderRepo.GetLinesByOrderID(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	history, err := uc.orderRepo.GetHistoryByOrderID(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(ord, lines)
	resp.StatusHistory = make([]dto.StatusEntryResponse, 0, len(history))
	for _, e := range history {
		resp.StatusHistory = append(resp.StatusHistory, dto.StatusEntryResponse{
			Status:    e.Status,
			Notes:     e.Notes,
			Timestamp: e.CreatedAt,
		})
	}
	return resp, nil
}

func toOrderResponse(o *entity.Order, lines []*entity.OrderLine) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		ShippingAddress: dto.ShippingAddress{
			Address: o.ShippingAddress,
			City:    o.ShippingCity,
		},
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.OrderLineResponse{
			BookID:   l.BookID,
			Title:    l.Title,
			Author:   l.Author,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal,
		})
	}
	return resp
}
