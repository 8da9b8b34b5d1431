package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	cats map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.cats[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.cats[id], nil
}
func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.cats {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(c *entity.Category) error { r.cats[c.ID] = c; return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.cats {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCategoryRepo) Delete(id string) error { delete(r.cats, id); return nil }

// fakeCatalogBookRepo solo implementa lo que el caso de uso de categorías
// toca: conteo por categoría y desvinculación.
type fakeCatalogBookRepo struct {
	books map[string]*entity.Book
}

func newFakeCatalogBookRepo() *fakeCatalogBookRepo {
	return &fakeCatalogBookRepo{books: make(map[string]*entity.Book)}
}

func (r *fakeCatalogBookRepo) Create(b *entity.Book) error              { r.books[b.ID] = b; return nil }
func (r *fakeCatalogBookRepo) GetByID(id string) (*entity.Book, error)  { return r.books[id], nil }
func (r *fakeCatalogBookRepo) GetByTitle(string) (*entity.Book, error)  { return nil, nil }
func (r *fakeCatalogBookRepo) Update(b *entity.Book) error              { r.books[b.ID] = b; return nil }
func (r *fakeCatalogBookRepo) List(repository.BookFilter, int, int) ([]*entity.Book, int, error) {
	return nil, 0, nil
}
func (r *fakeCatalogBookRepo) Delete(id string) error { delete(r.books, id); return nil }
func (r *fakeCatalogBookRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r *fakeCatalogBookRepo) DetachCategory(categoryID string) error {
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			b.CategoryID = ""
		}
	}
	return nil
}
func (r *fakeCatalogBookRepo) GetForUpdate(_ context.Context, id string) (*entity.Book, error) {
	return r.books[id], nil
}
func (r *fakeCatalogBookRepo) DecrementStock(context.Context, string, int) (bool, error) {
	return false, nil
}

// passCatalogTx ejecuta el callback directo sobre los fakes.
type passCatalogTx struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
}

func (r *passCatalogTx) RunCatalog(ctx context.Context, fn func(
	repository.BookRepository, repository.CategoryRepository) error,
) error {
	return fn(r.bookRepo, r.categoryRepo)
}

func newCategoryUC() (*catalog.CategoryUseCase, *fakeCategoryRepo, *fakeCatalogBookRepo) {
	catRepo := newFakeCategoryRepo()
	bookRepo := newFakeCatalogBookRepo()
	tx := &passCatalogTx{bookRepo: bookRepo, categoryRepo: catRepo}
	return catalog.NewCategoryUseCase(catRepo, bookRepo, tx), catRepo, bookRepo
}

func mustCreate(t *testing.T, uc *catalog.CategoryUseCase, name string) *dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NombreDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, _, _ := newCategoryUC()
	mustCreate(t, uc, "Ficción")

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "FICCIÓN"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"la unicidad del nombre no distingue mayúsculas")
}

func TestCreate_NaceActiva(t *testing.T) {
	uc, _, _ := newCategoryUC()
	out := mustCreate(t, uc, "Técnico")
	assert.True(t, out.IsActive)
}

func TestUpdate_RenameAValorDeOtraCategoria(t *testing.T) {
	uc, _, _ := newCategoryUC()
	mustCreate(t, uc, "Ficción")
	other := mustCreate(t, uc, "No ficción")

	name := "ficción"
	_, err := uc.Update(other.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_RenameASuPropioNombreNoConflicta(t *testing.T) {
	uc, _, _ := newCategoryUC()
	cat := mustCreate(t, uc, "Ficción")

	name := "FICCIÓN"
	out, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "FICCIÓN", out.Name)
}

func TestToggle_InvierteActiva(t *testing.T) {
	uc, _, _ := newCategoryUC()
	cat := mustCreate(t, uc, "Ficción")

	out, err := uc.Toggle(cat.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.Toggle(cat.ID)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestDelete_SinLibrosElimina(t *testing.T) {
	uc, catRepo, _ := newCategoryUC()
	cat := mustCreate(t, uc, "Ficción")

	require.NoError(t, uc.Delete(context.Background(), cat.ID, false))
	assert.NotContains(t, catRepo.cats, cat.ID)
}

func TestDelete_ConLibrosSinForce_Conflicto(t *testing.T) {
	uc, catRepo, bookRepo := newCategoryUC()
	cat := mustCreate(t, uc, "Ficción")
	bookRepo.books["b1"] = &entity.Book{ID: "b1", Title: "Cien años de soledad", CategoryID: cat.ID}
	bookRepo.books["b2"] = &entity.Book{ID: "b2", Title: "El coronel", CategoryID: cat.ID}

	err := uc.Delete(context.Background(), cat.ID, false)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "2", "el error debe reportar el conteo de dependientes")
	assert.Contains(t, catRepo.cats, cat.ID, "la categoría debe sobrevivir")
}

func TestDelete_ConForce_DesvinculaYElimina(t *testing.T) {
	uc, catRepo, bookRepo := newCategoryUC()
	cat := mustCreate(t, uc, "Ficción")
	bookRepo.books["b1"] = &entity.Book{ID: "b1", Title: "Cien años de soledad", CategoryID: cat.ID}

	require.NoError(t, uc.Delete(context.Background(), cat.ID, true))

	assert.NotContains(t, catRepo.cats, cat.ID)
	assert.Empty(t, bookRepo.books["b1"].CategoryID,
		"el libro queda sin categoría, no se borra en cascada")
}

func TestDelete_Inexistente(t *testing.T) {
	uc, _, _ := newCategoryUC()
	err := uc.Delete(context.Background(), "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
