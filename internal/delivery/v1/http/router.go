package http

import (
	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http/middleware"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	authz  *middleware.Authz
	logger logger.Logger
}

func NewRouter(router *chi.Mux, authz *middleware.Authz, logger logger.Logger) *Router {
	return &Router{router: router, authz: authz, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC, catalogUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		orderHandler := NewOrderHandler(orderUC, r.logger)
		productHandler := NewProductHandler(catalogUC, r.logger)
		categoryHandler := NewCategoryHandler(catalogUC, r.logger)

		registerPublicRoutes(api, orderHandler, productHandler, categoryHandler)
		registerAdminRoutes(api, r.authz, orderHandler, productHandler, categoryHandler)
	})
}

// registerPublicRoutes — витрина и оформление заказа, доступны без авторизации.
func registerPublicRoutes(router chi.Router, orderHandler *OrderHandler, productHandler *ProductHandler, categoryHandler *CategoryHandler) {
	router.Post("/orders", orderHandler.placeOrder)

	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", productHandler.listProducts)
		pr.Get("/{id}", productHandler.getProduct)
	})

	router.Get("/categories", categoryHandler.listCategories)
}

// registerAdminRoutes — управление заказами и каталогом, только под admin-JWT.
func registerAdminRoutes(router chi.Router, authz *middleware.Authz, orderHandler *OrderHandler, productHandler *ProductHandler, categoryHandler *CategoryHandler) {
	router.Group(func(admin chi.Router) {
		admin.Use(authz.RequireAdmin)

		admin.Get("/orders", orderHandler.listOrders)
		admin.Get("/orders/{id}", orderHandler.getOrder)
		admin.Put("/orders/{id}/status", orderHandler.setStatus)

		admin.Post("/products", productHandler.createProduct)
		admin.Put("/products/{id}", productHandler.updateProduct)
		admin.Delete("/products/{id}", productHandler.deleteProduct)

		admin.Post("/categories", categoryHandler.createCategory)
	})
}
