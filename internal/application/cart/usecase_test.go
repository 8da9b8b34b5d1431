package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/cart"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-0000000000aa"

// fakeCartRepo replica la semántica del repo real: unicidad por
// (user_id, title), incremento en 1 y precio congelado.
type fakeCartRepo struct {
	lines map[string][]*entity.CartLine
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
			l.Quantity++ // el precio NO se refresca
			return nil
		}
	}
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

func newUC() (*cart.CartUseCase, *fakeCartRepo) {
	repo := newFakeCartRepo()
	return cart.NewCartUseCase(repo), repo
}

func addSapiens(t *testing.T, uc *cart.CartUseCase) *dto.CartResponse {
	t.Helper()
	out, err := uc.AddItem(context.Background(), testUserID, dto.AddCartItemRequest{
		Title:  "Sapiens",
		Author: "Harari",
		Price:  decimal.RequireFromString("72000"),
	})
	require.NoError(t, err)
	return out
}

func TestAddItem_NuevaLineaConCantidadUno(t *testing.T) {
	uc, _ := newUC()

	out := addSapiens(t, uc)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Sapiens", out.Items[0].Title)
	assert.Equal(t, 1, out.Items[0].Quantity)
}

func TestAddItem_MismoTituloIncrementaSinRefrescarPrecio(t *testing.T) {
	uc, _ := newUC()
	addSapiens(t, uc)

	// segundo agregado con otro precio: incrementa, el precio no cambia
	out, err := uc.AddItem(context.Background(), testUserID, dto.AddCartItemRequest{
		Title: "Sapiens",
		Price: decimal.RequireFromString("99000"),
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "la identidad de la línea es el título")
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("72000").Equal(out.Items[0].Price),
		"el precio queda congelado en el primer agregado")
}

func TestAddItem_SinTitulo(t *testing.T) {
	uc, _ := newUC()
	_, err := uc.AddItem(context.Background(), testUserID, dto.AddCartItemRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItem_ReemplazaCantidad(t *testing.T) {
	uc, _ := newUC()
	addSapiens(t, uc)

	out, err := uc.UpdateItem(context.Background(), testUserID, "Sapiens", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Items[0].Quantity, "la cantidad se reemplaza, no se suma")
}

func TestUpdateItem_CeroElimina(t *testing.T) {
	uc, _ := newUC()
	addSapiens(t, uc)

	out, err := uc.UpdateItem(context.Background(), testUserID, "Sapiens", 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestUpdateItem_NegativaEsInvalida(t *testing.T) {
	uc, _ := newUC()
	addSapiens(t, uc)

	_, err := uc.UpdateItem(context.Background(), testUserID, "Sapiens", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItem_TituloAusente(t *testing.T) {
	uc, _ := newUC()

	_, err := uc.UpdateItem(context.Background(), testUserID, "No está", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// también con cantidad 0
	_, err = uc.UpdateItem(context.Background(), testUserID, "No está", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem_EsIdempotente(t *testing.T) {
	uc, _ := newUC()
	addSapiens(t, uc)

	out, err := uc.RemoveItem(context.Background(), testUserID, "Sapiens")
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	// repetir no falla
	_, err = uc.RemoveItem(context.Background(), testUserID, "Sapiens")
	assert.NoError(t, err)
}

func TestClear_VaciaElCarrito(t *testing.T) {
	uc, repo := newUC()
	addSapiens(t, uc)

	require.NoError(t, uc.Clear(context.Background(), testUserID))
	assert.Empty(t, repo.lines[testUserID])
}
