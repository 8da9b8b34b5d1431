package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
)

// BookHandler maneja las peticiones HTTP del catálogo de libros. La lectura
// es pública; crear, actualizar y eliminar exigen admin (guard en el router).
type BookHandler struct {
	uc *catalog.BookUseCase
}

// NewBookHandler construye el handler.
func NewBookHandler(uc *catalog.BookUseCase) *BookHandler {
	return &BookHandler{uc: uc}
}

// Create godoc
// @Summary      Crear libro
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Datos del libro"
// @Success      201   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Author == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y author son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CATEGORY_NOT_FOUND", Message: "la categoría no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener libro por ID
// @Tags         books
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  dto.BookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar libros (filtro por categoría, búsqueda y orden)
// @Tags         books
// @Produce      json
// @Param        category  query  string  false  "ID de categoría"
// @Param        q         query  string  false  "Texto a buscar en título, autor o descripción"
// @Param        sort      query  string  false  "price_asc | price_desc | title_asc | title_desc | newest"
// @Param        page      query  int     false  "Página (1-based)"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(10)
// @Success      200       {object}  dto.BookListResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	var in dto.ListBooksRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar libros por texto
// @Tags         books
// @Produce      json
// @Param        q      query  string  true   "Texto a buscar"
// @Param        page   query  int     false  "Página (1-based)"  default(1)
// @Param        limit  query  int     false  "Tamaño de página"  default(10)
// @Success      200    {object}  dto.BookListResponse
// @Router       /api/books/search [get]
func (h *BookHandler) Search(c *fiber.Ctx) error {
	var in dto.ListBooksRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	in.CategoryID = ""
	out, err := h.uc.List(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar libros de una categoría
// @Tags         books
// @Produce      json
// @Param        id     path   string  true   "ID de la categoría"
// @Param        page   query  int     false  "Página (1-based)"  default(1)
// @Param        limit  query  int     false  "Tamaño de página"  default(10)
// @Success      200    {object}  dto.BookListResponse
// @Router       /api/books/category/{id} [get]
func (h *BookHandler) ListByCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ListBooksRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	in.CategoryID = id
	out, err := h.uc.List(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar libro
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del libro"
// @Param        body  body  dto.UpdateBookRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BookResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro
// @Tags         books
// @Security     Bearer
// @Param        id  path  string  true  "ID del libro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
