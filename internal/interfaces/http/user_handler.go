package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/auth"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/cart"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/dto"
	"github.com/Michaeloduah/BookTree-Backend/internal/domain"
)

// UserHandler maneja el perfil del usuario autenticado y su carrito.
type UserHandler struct {
	authUC *auth.AuthUseCase
	cartUC *cart.CartUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(authUC *auth.AuthUseCase, cartUC *cart.CartUseCase) *UserHandler {
	return &UserHandler{authUC: authUC, cartUC: cartUC}
}

// GetProfile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.authUC.GetProfile(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.authUC.UpdateProfile(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetCart godoc
// @Summary      Ver el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/users/cart [get]
func (h *UserHandler) GetCart(c *fiber.Ctx) error {
	out, err := h.cartUC.Get(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddCartItem godoc
// @Summary      Agregar una línea al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Línea a agregar; si el título ya está, incrementa cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/cart [post]
func (h *UserHandler) AddCartItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.cartUC.AddItem(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateCartItem godoc
// @Summary      Cambiar la cantidad de una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        title  path  string  true  "Título de la línea (identidad del carrito)"
// @Param        body   body  dto.UpdateCartItemRequest  true  "Cantidad (0 elimina la línea)"
// @Success      200    {object}  dto.CartResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/cart/{title} [put]
func (h *UserHandler) UpdateCartItem(c *fiber.Ctx) error {
	title, err := titleParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TITLE", Message: "title es requerido"})
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cartUC.UpdateItem(c.Context(), GetUserID(c), title, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la línea no está en el carrito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveCartItem godoc
// @Summary      Quitar una línea del carrito (idempotente)
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        title  path  string  true  "Título de la línea"
// @Success      200    {object}  dto.CartResponse
// @Router       /api/users/cart/{title} [delete]
func (h *UserHandler) RemoveCartItem(c *fiber.Ctx) error {
	title, err := titleParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TITLE", Message: "title es requerido"})
	}
	out, err := h.cartUC.RemoveItem(c.Context(), GetUserID(c), title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/users/cart [delete]
func (h *UserHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cartUC.Clear(c.Context(), GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// titleParam decodifica el título de la ruta; los títulos llevan espacios y
// llegan percent-encoded.
func titleParam(c *fiber.Ctx) (string, error) {
	raw := c.Params("title")
	if raw == "" {
		return "", fiber.ErrBadRequest
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil || decoded == "" {
		return "", fiber.ErrBadRequest
	}
	return decoded, nil
}
