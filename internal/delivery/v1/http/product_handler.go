package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Активные товары, опционально отфильтрованные по slug категории
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Slug категории"
//	@Success		200			{array}		ProductResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{
		CategorySlug: r.URL.Query().Get("category"),
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает товар в каталоге, опционально с изображением
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			description	formData	string	false	"Описание"
//	@Param			price		formData	string	true	"Цена"
//	@Param			quantity	formData	integer	true	"Остаток на складе"
//	@Param			category_id	formData	string	true	"Идентификатор категории"
//	@Param			image		formData	file	false	"Изображение товара"
//	@Success		201			{object}	ProductResponse	"Созданный товар"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Security		AdminAuth
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Меняет только переданные поля формы, остальные не трогает
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string	true	"Идентификатор товара"
//	@Param			name		formData	string	false	"Название товара"
//	@Param			description	formData	string	false	"Описание"
//	@Param			price		formData	string	false	"Цена"
//	@Param			quantity	formData	integer	false	"Остаток на складе"
//	@Param			category_id	formData	string	false	"Идентификатор категории"
//	@Param			image		formData	file	false	"Изображение товара"
//	@Success		200			{object}	ProductResponse	"Обновлённый товар"
//	@Failure		404			{object}	ErrorResponse	"Товар не найден"
//	@Security		AdminAuth
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseProductUpdateForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}
	req.ID = chi.URLParam(r, "id")

	product, err := p.catalogUsecase.UpdateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Снимает товар с витрины, исторические заказы не трогает
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		204	"Товар снят с витрины"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Security		AdminAuth
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := p.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseProductForm(r *http.Request) (*usecase.CreateProductReq, error) {
	name := r.FormValue("name")
	categoryID := r.FormValue("category_id")
	priceStr := r.FormValue("price")
	quantityStr := r.FormValue("quantity")

	if name == "" || categoryID == "" || priceStr == "" || quantityStr == "" {
		return nil, e.Wrap(whereAmIForm(r), e.ErrMissingFields)
	}

	price, err := parsePrice(priceStr)
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseInt(quantityStr, 10, 32)
	if err != nil || quantity < 0 {
		return nil, e.ErrStatusBadRequest
	}

	var description *string
	if d := r.FormValue("description"); d != "" {
		description = &d
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		return nil, err
	}

	return &usecase.CreateProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    int32(quantity),
		CategoryID:  categoryID,
		Image:       image,
	}, nil
}

func parseProductUpdateForm(r *http.Request) (*usecase.UpdateProductReq, error) {
	req := &usecase.UpdateProductReq{}

	if name := r.FormValue("name"); name != "" {
		req.Name = &name
	}
	if d := r.FormValue("description"); d != "" {
		req.Description = &d
	}
	if categoryID := r.FormValue("category_id"); categoryID != "" {
		req.CategoryID = &categoryID
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := parsePrice(priceStr)
		if err != nil {
			return nil, err
		}
		req.Price = &price
	}

	if quantityStr := r.FormValue("quantity"); quantityStr != "" {
		quantity, err := strconv.ParseInt(quantityStr, 10, 32)
		if err != nil || quantity < 0 {
			return nil, e.ErrStatusBadRequest
		}
		q := int32(quantity)
		req.Quantity = &q
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		return nil, err
	}
	req.Image = image

	return req, nil
}

// whereAmIForm собирает значения обязательных полей формы для сообщения об ошибке.
func whereAmIForm(r *http.Request) string {
	return "name: " + r.FormValue("name") +
		", category_id: " + r.FormValue("category_id") +
		", price: " + r.FormValue("price") +
		", quantity: " + r.FormValue("quantity")
}
