package products

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/app/api"
	"github.com/product-catalog/catalog-api/models"
)

type ProductProvider interface {
	CreateProduct(ctx context.Context, req *ProductRequest) (*ProductResponse, error)
	GetAllProducts(ctx context.Context, filters models.ProductFilters) ([]ProductResponse, error)
	GetProductByID(ctx context.Context, id uint) (ProductResponse, bool, error)
	UpdateProduct(ctx context.Context, id uint, req *ProductRequest) (*ProductResponse, error)
	PatchProduct(ctx context.Context, id uint, req *ProductPatchRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	service ProductProvider
	logger  *zap.Logger
}

func NewProductHandler(s ProductProvider, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: s,
		logger:  logger,
	}
}

// Routes mounts the product endpoints on r.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleGetAll)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}", h.HandlePatch)
	r.Delete("/{id}", h.HandleDelete)
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	products, err := h.service.GetAllProducts(r.Context(), filters)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.OKResponse(w, products)
}

// parseFilters reads ?categoryId= and ?price_lt=. Empty values are ignored.
func parseFilters(r *http.Request) (models.ProductFilters, error) {
	var filters models.ProductFilters

	if idStr := r.URL.Query().Get("categoryId"); idStr != "" {
		categoryID, err := api.ParseID(idStr)
		if err != nil {
			return filters, fmt.Errorf("%w: categoryId %q", api.ErrInvalidQuery, idStr)
		}
		filters.CategoryID = &categoryID
	}

	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return filters, fmt.Errorf("%w: price_lt %q", api.ErrInvalidQuery, priceStr)
		}
		filters.PriceLessThan = &price
	}

	return filters, nil
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	product, found, err := h.service.GetProductByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if !found {
		api.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}

	api.OKResponse(w, product)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductRequest
	if err := api.DecodeJSON(w, r, &input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if err := api.ValidateStruct(input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &input)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.JSONResponse(w, http.StatusCreated, product)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	var input ProductRequest
	if err := api.DecodeJSON(w, r, &input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if err := api.ValidateStruct(input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &input)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.OKResponse(w, product)
}

func (h *ProductHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	var input ProductPatchRequest
	if err := api.DecodeJSON(w, r, &input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if err := api.ValidateStruct(input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	product, err := h.service.PatchProduct(r.Context(), id, &input)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.OKResponse(w, product)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.NoContent(w)
}
