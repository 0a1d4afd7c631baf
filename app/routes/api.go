// Package routes wires controllers onto the router.
package routes

import (
	"github.com/ctrlz-wear/ctrlz-api/app/controllers"
	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/services"
	"github.com/ctrlz-wear/ctrlz-api/pkg/database"
	"github.com/ctrlz-wear/ctrlz-api/pkg/middleware"
	"github.com/ctrlz-wear/ctrlz-api/pkg/router"
)

// RegisterAPI registers every route of the CTRL-Z API. The product store is
// built from the process-wide Mongo handle; when that is nil the catalog
// serves its static fallback.
func RegisterAPI(r *router.Router) {
	store := repositories.NewMongoProductStore(database.DB)
	catalog := services.NewCatalogService(store)

	products := controllers.NewProductController(catalog)
	authC := controllers.NewAuthController(services.NewAuthService())
	health := controllers.NewHealthController()

	r.Get("/", "health.root", health.Root)
	r.Get("/test", "health.test", health.Test)

	api := r.Group("/api")
	api.Get("/products", "products.list", products.List)
	api.Get("/products/{id}", "products.show", products.Show)
	api.Post("/auth/login", "auth.login", authC.Login)

	protected := api.Group("/auth", middleware.AuthMiddleware)
	protected.Get("/me", "auth.me", authC.Me)
}
