package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
)

func newBookUC() (*catalog.BookUseCase, *fakeCatalogBookRepo, *fakeCategoryRepo) {
	bookRepo := newFakeCatalogBookRepo()
	catRepo := newFakeCategoryRepo()
	return catalog.NewBookUseCase(bookRepo, catRepo), bookRepo, catRepo
}

func validBook() dto.CreateBookRequest {
	return dto.CreateBookRequest{
		Title:  "Cien años de soledad",
		Author: "Gabriel García Márquez",
		Price:  decimal.RequireFromString("65000"),
		Stock:  10,
	}
}

func TestCreateBook_PrecioDebeSerPositivo(t *testing.T) {
	uc, _, _ := newBookUC()

	in := validBook()
	in.Price = decimal.Zero
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Price = decimal.RequireFromString("-10")
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateBook_CategoriaDebeExistir(t *testing.T) {
	uc, _, catRepo := newBookUC()

	in := validBook()
	in.CategoryID = "20000000-0000-0000-0000-000000000001"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	catRepo.cats[in.CategoryID] = &entity.Category{ID: in.CategoryID, Name: "Ficción", IsActive: true}
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, in.CategoryID, out.CategoryID)
}

func TestCreateBook_SinCategoriaEsValido(t *testing.T) {
	uc, _, _ := newBookUC()

	out, err := uc.Create(validBook())
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)
	assert.Equal(t, 10, out.Stock)
}

func TestGetBook_InexistenteDevuelveNil(t *testing.T) {
	uc, _, _ := newBookUC()

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdateBook_Parcial(t *testing.T) {
	uc, _, _ := newBookUC()
	created, err := uc.Create(validBook())
	require.NoError(t, err)

	price := decimal.RequireFromString("70000")
	out, err := uc.Update(created.ID, dto.UpdateBookRequest{Price: &price})
	require.NoError(t, err)

	assert.True(t, price.Equal(out.Price))
	assert.Equal(t, created.Title, out.Title, "los campos no enviados no cambian")
	assert.Equal(t, created.Stock, out.Stock, "el stock solo lo muta el motor de pedidos")
}

func TestUpdateBook_PrecioInvalido(t *testing.T) {
	uc, _, _ := newBookUC()
	created, err := uc.Create(validBook())
	require.NoError(t, err)

	zero := decimal.Zero
	_, err = uc.Update(created.ID, dto.UpdateBookRequest{Price: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateBook_QuitarCategoria(t *testing.T) {
	uc, _, catRepo := newBookUC()
	catID := "20000000-0000-0000-0000-000000000001"
	catRepo.cats[catID] = &entity.Category{ID: catID, Name: "Ficción", IsActive: true}

	in := validBook()
	in.CategoryID = catID
	created, err := uc.Create(in)
	require.NoError(t, err)

	empty := ""
	out, err := uc.Update(created.ID, dto.UpdateBookRequest{CategoryID: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.CategoryID)
}

func TestDeleteBook_Inexistente(t *testing.T) {
	uc, _, _ := newBookUC()
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
