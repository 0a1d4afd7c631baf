// Package controllers maps HTTP requests onto the application services and
// service errors back onto status codes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/services"
	"github.com/ctrlz-wear/ctrlz-api/pkg/logger"
	"github.com/ctrlz-wear/ctrlz-api/pkg/response"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List handles GET /api/products?category=&q=. It never answers an error for
// store unavailability; the service degrades to the static fallback instead.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	q := r.URL.Query().Get("q")

	views, err := c.catalog.ListProducts(r.Context(), category, q)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, views)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := c.catalog.GetProduct(r.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		response.Error(w, http.StatusBadRequest, "Invalid product id")
	case errors.Is(err, services.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("get product", "error", err, "id", id)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.JSON(w, http.StatusOK, view)
	}
}
