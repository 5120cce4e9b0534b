package categories

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/app/api"
)

type CategoryProvider interface {
	CreateCategory(ctx context.Context, req *CategoryRequest) (*CategoryResponse, error)
	GetAllCategories(ctx context.Context) ([]CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id uint) (CategoryResponse, bool, error)
	UpdateCategory(ctx context.Context, id uint, req *CategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	service CategoryProvider
	logger  *zap.Logger
}

func NewCategoryHandler(s CategoryProvider, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{service: s, logger: logger}
}

// Routes mounts the category endpoints on r.
func (h *CategoryHandler) Routes(r chi.Router) {
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleGetAll)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.OKResponse(w, categories)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	category, found, err := h.service.GetCategoryByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if !found {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	api.OKResponse(w, category)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CategoryRequest
	if err := api.DecodeJSON(w, r, &input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if err := api.ValidateStruct(input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &input)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.JSONResponse(w, http.StatusCreated, category)
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	var input CategoryRequest
	if err := api.DecodeJSON(w, r, &input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	if err := api.ValidateStruct(input); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &input)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.OKResponse(w, category)
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.NoContent(w)
}
