package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		CategoryResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCategoryResponse(categories))
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Создает категорию с уникальным url-safe slug
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		createCategoryRequest	true	"Данные категории"
//	@Success		201			{object}	CategoryResponse		"Созданная категория"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Security		AdminAuth
//	@Router			/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	category, err := c.catalogUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}
