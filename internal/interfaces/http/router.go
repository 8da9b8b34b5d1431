package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Michaeloduah/BookTree-Backend/internal/application/auth"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/cart"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/order"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CartUC     *cart.CartUseCase
	BookUC     *catalog.BookUseCase
	CategoryUC *catalog.CategoryUseCase
	OrderUC    *order.OrderUseCase
	ReceiptUC  *order.ReceiptUseCase
	Users      userStore
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireAdmin(deps.Users)

	// Users (registro y login públicos)
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	// Perfil + carrito (protegido)
	userHandler := NewUserHandler(deps.AuthUC, deps.CartUC)
	users.Get("/profile", authRequired, userHandler.GetProfile)
	users.Put("/profile", authRequired, userHandler.UpdateProfile)
	cartGroup := users.Group("/cart", authRequired)
	cartGroup.Get("/", userHandler.GetCart)
	cartGroup.Post("/", userHandler.AddCartItem)
	cartGroup.Delete("/", userHandler.ClearCart)
	cartGroup.Put("/:title", userHandler.UpdateCartItem)
	cartGroup.Delete("/:title", userHandler.RemoveCartItem)

	// Books (lectura pública con identidad opcional, mutaciones de admin)
	books := api.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC)
	books.Get("/", OptionalAuth(deps.JWTSecret), bookHandler.List)
	books.Get("/search", OptionalAuth(deps.JWTSecret), bookHandler.Search)
	books.Get("/category/:id", OptionalAuth(deps.JWTSecret), bookHandler.ListByCategory)
	books.Get("/:id", OptionalAuth(deps.JWTSecret), bookHandler.GetByID)
	books.Post("/", authRequired, adminOnly, bookHandler.Create)
	books.Put("/:id", authRequired, adminOnly, bookHandler.Update)
	books.Delete("/:id", authRequired, adminOnly, bookHandler.Delete)

	// Categories (lectura pública, mutaciones de admin)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authRequired, adminOnly, categoryHandler.Create)
	categories.Put("/:id", authRequired, adminOnly, categoryHandler.Update)
	categories.Put("/:id/toggle", authRequired, adminOnly, categoryHandler.Toggle)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	// Orders (protegido; la propiedad del recurso se valida en el caso de uso)
	orders := api.Group("/orders", authRequired)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Post("/from-cart", orderHandler.CreateFromCart)
	orders.Get("/", orderHandler.List)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.DownloadReceipt)
}
