package cart

import (
	"context"
	"time"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// CartUseCase operaciones sobre el carrito del usuario. La identidad de una
// línea es el título: dos libros distintos con el mismo título colisionan
// en la misma línea (peculiaridad heredada, documentada y no corregida).
type CartUseCase struct {
	cartRepo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo}
}

// Get devuelve el carrito completo del usuario.
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// AddItem agrega una línea con cantidad 1 o, si el título ya está en el
// carrito, incrementa su cantidad en 1. El precio de la línea existente NO
// se refresca: queda el snapshot del primer agregado.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	line := &entity.CartLine{
		UserID:      userID,
		Title:       in.Title,
		Author:      in.Author,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    1,
		BookID:      in.BookID,
		AddedAt:     time.Now(),
	}
	if err := uc.cartRepo.AddOrIncrement(ctx, line); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// UpdateItem reemplaza la cantidad de la línea. Cantidad 0 la elimina;
// cantidad negativa es entrada inválida; título ausente es ErrNotFound.
func (uc *CartUseCase) UpdateItem(ctx context.Context, userID, title string, quantity int) (*dto.CartResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if quantity == 0 {
		existing, err := uc.cartRepo.Get(ctx, userID, title)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.cartRepo.Remove(ctx, userID, title); err != nil {
			return nil, err
		}
		return uc.Get(ctx, userID)
	}
	updated, err := uc.cartRepo.UpdateQuantity(ctx, userID, title, quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrNotFound
	}
	return uc.Get(ctx, userID)
}

// RemoveItem elimina la línea si existe; no falla si el título no está.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, title string) (*dto.CartResponse, error) {
	if err := uc.cartRepo.Remove(ctx, userID, title); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID)
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Clear(ctx, userID)
}

func toCartResponse(lines []*entity.CartLine) *dto.CartResponse {
	out := &dto.CartResponse{Items: make([]dto.CartLineResponse, 0, len(lines))}
	for _, l := range lines {
		out.Items = append(out.Items, dto.CartLineResponse{
			Title:       l.Title,
			Author:      l.Author,
			Price:       l.Price,
			Description: l.Description,
			Quantity:    l.Quantity,
			BookID:      l.BookID,
			AddedAt:     l.AddedAt,
		})
	}
	return out
}
