package order

import (
	"context"
	"fmt"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante (PDF) de un pedido.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// DownloadReceipt recupera el pedido con sus líneas y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no pertenece al actor y el
//     actor no tiene rol admin (el rol se re-consulta en la BD).
func (uc *ReceiptUseCase) DownloadReceipt(
	ctx context.Context,
	actorID, orderID string,
) (pdfBytes []byte, filename string, err error) {
	actor, err := uc.userRepo.FindByID(actorID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener actor: %w", err)
	}
	if actor == nil {
		return nil, "", domain.ErrForbidden
	}

	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener pedido: %w", err)
	}
	if ord == nil {
		return nil, "", domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && ord.UserID != actor.ID {
		return nil, "", domain.ErrForbidden
	}

	// El comprobante se emite a nombre del comprador, no del actor.
	buyer := actor
	if ord.UserID != actor.ID {
		buyer, err = uc.userRepo.FindByID(ord.UserID)
		if err != nil || buyer == nil {
			return nil, "", fmt.Errorf("receipt: obtener comprador: %w", err)
		}
	}

	lines, err := uc.orderRepo.GetLinesByOrderID(ctx, ord.ID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(ctx, ord, buyer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", ord.OrderNumber)
	return pdfBytes, filename, nil
}
