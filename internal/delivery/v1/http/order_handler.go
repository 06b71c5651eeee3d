package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type placeOrderRequest struct {
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail"`
	Items         []placeOrderItemRequest `json:"items"`
	TotalAmount   string                  `json:"totalAmount"`
}

type placeOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает заказ из корзины, списывает остатки товаров
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		placeOrderRequest	true	"Данные заказа"
//	@Success		201		{object}	OrderResponse		"Созданный заказ"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	total, err := parsePrice(req.TotalAmount)
	if err != nil {
		o.logger.Warnf("%d %s: totalAmount=%q", http.StatusBadRequest, err.Error(), req.TotalAmount)
		WriteError(w, err)
		return
	}

	lines := make([]usecase.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := parsePrice(item.Price)
		if err != nil {
			o.logger.Warnf("%d %s: price=%q", http.StatusBadRequest, err.Error(), item.Price)
			WriteError(w, err)
			return
		}

		lines = append(lines, usecase.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	order, err := o.orderUsecase.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(req.CustomerName, req.CustomerEmail, lines, total))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// setStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Переводит заказ в новый статус из фиксированного набора
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Идентификатор заказа"
//	@Param			status	body		setStatusRequest	true	"Новый статус"
//	@Success		200		{object}	OrderResponse		"Обновлённый заказ"
//	@Failure		400		{object}	ErrorResponse		"Недопустимый статус"
//	@Failure		404		{object}	ErrorResponse		"Заказ не найден"
//	@Security		AdminAuth
//	@Router			/orders/{id}/status [put]
func (o *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	order, err := o.orderUsecase.SetStatus(r.Context(), usecase.NewSetStatusReq(orderID, req.Status))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	500	{object}	ErrorResponse
//	@Security	AdminAuth
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderResponse(orders))
}

// getOrder
//
//	@Summary	Заказ с позициями
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор заказа"
//	@Success	200	{object}	OrderWithItemsResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	AdminAuth
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := o.orderUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderWithItemsResponse(order))
}
