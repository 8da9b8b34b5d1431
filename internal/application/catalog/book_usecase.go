package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// BookUseCase casos de uso del catálogo de libros.
type BookUseCase struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository) *BookUseCase {
	return &BookUseCase{bookRepo: bookRepo, categoryRepo: categoryRepo}
}

// Create valida y persiste un libro nuevo. Precio debe ser > 0; la
// categoría, si viene, debe existir.
func (uc *BookUseCase) Create(in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Title == "" || in.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	book := &entity.Book{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// GetByID devuelve un libro o nil si no existe.
func (uc *BookUseCase) GetByID(id string) (*dto.BookResponse, error) {
	book, err := uc.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}
	return toBookResponse(book), nil
}

// List devuelve la página de libros según filtro, orden y paginación.
func (uc *BookUseCase) List(in dto.ListBooksRequest) (*dto.BookListResponse, error) {
	in.DefaultPage()
	filter := repository.BookFilter{
		CategoryID: in.CategoryID,
		Query:      in.Query,
		Sort:       in.Sort,
	}
	books, total, err := uc.bookRepo.List(filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.BookListResponse{
		Items: make([]dto.BookResponse, 0, len(books)),
		Page:  dto.NewPageResponse(in.Page, in.Limit, total),
	}
	for _, b := range books {
		out.Items = append(out.Items, *toBookResponse(b))
	}
	return out, nil
}

// Update aplica cambios parciales a un libro. Stock no se actualiza por aquí.
func (uc *BookUseCase) Update(id string, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}
	if in.Title != nil && *in.Title != "" {
		book.Title = *in.Title
	}
	if in.Author != nil && *in.Author != "" {
		book.Author = *in.Author
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		book.Price = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		book.CategoryID = *in.CategoryID
	}
	book.UpdatedAt = time.Now()
	if err := uc.bookRepo.Update(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// Delete elimina un libro por ID.
func (uc *BookUseCase) Delete(id string) error {
	book, err := uc.bookRepo.GetByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return domain.ErrNotFound
	}
	return uc.bookRepo.Delete(id)
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		CategoryID:  b.CategoryID,
		Stock:       b.Stock,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
