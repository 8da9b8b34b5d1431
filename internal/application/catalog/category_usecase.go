package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías del catálogo.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	bookRepo     repository.BookRepository
	txRunner     TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, bookRepo repository.BookRepository, txRunner TxRunner) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, bookRepo: bookRepo, txRunner: txRunner}
}

// Create valida unicidad del nombre (case-insensitive) y persiste.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetByID devuelve una categoría o nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return toCategoryResponse(cat), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update aplica cambios parciales. El rename re-verifica unicidad del nombre
// (case-insensitive) contra otras categorías.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != "" {
		existing, err := uc.categoryRepo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != cat.ID {
			return nil, domain.ErrDuplicate
		}
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	cat.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Toggle invierte el flag IsActive.
func (uc *CategoryUseCase) Toggle(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	cat.IsActive = !cat.IsActive
	cat.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete elimina una categoría. Si tiene libros dependientes y force es
// false, falla con ErrConflict reportando el conteo; con force, desvincula
// los libros (category_id a NULL) y elimina, todo en una transacción.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string, force bool) error {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	count, err := uc.bookRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 && !force {
		return fmt.Errorf("%w: la categoría tiene %d libro(s) asociado(s)", domain.ErrConflict, count)
	}
	if count == 0 {
		return uc.categoryRepo.Delete(id)
	}
	// Forzado: desvincular y eliminar deben ser atómicos.
	return uc.txRunner.RunCatalog(ctx, func(
		bookRepo repository.BookRepository,
		categoryRepo repository.CategoryRepository,
	) error {
		if err := bookRepo.DetachCategory(id); err != nil {
			return err
		}
		return categoryRepo.Delete(id)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
