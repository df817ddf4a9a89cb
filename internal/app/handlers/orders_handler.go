package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	appContext "github.com/ujwegh/keytoheart/internal/app/context"
	appErrors "github.com/ujwegh/keytoheart/internal/app/errors"
	"github.com/ujwegh/keytoheart/internal/app/models"
	"github.com/ujwegh/keytoheart/internal/app/service"
)

type (
	OrdersHandler struct {
		orderService   service.OrderService
		contextTimeout time.Duration
	}

	//easyjson:json
	CreateOrderRequestDTO struct {
		Total int64 `json:"total"`
	}
	//easyjson:json
	UpdateStatusRequestDTO struct {
		Status string `json:"status"`
	}
	//easyjson:json
	OrderDTO struct {
		ID           int64     `json:"id"`
		Phone        string    `json:"phone"`
		Total        int64     `json:"total"`
		Status       string    `json:"status"`
		BonusAccrued bool      `json:"bonusAccrued"`
		BonusAmount  int64     `json:"bonusAmount"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}
	//easyjson:json
	OrderDTOSlice []OrderDTO
)

func NewOrdersHandler(contextTimeoutSec int, orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateOrder godoc
// @Summary Register an order
// @Description Registers a checkout of the authenticated customer. Cashback is granted when the order is delivered.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequestDTO true "Order total"
// @Success 201 {object} OrderDTO
// @Failure 400 {object} ErrorResponse "Bad Request - Unable to read body or negative total"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [post]
func (oh *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := CreateOrderRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}

	order, err := oh.orderService.CreateOrder(ctx, appContext.Phone(r.Context()), request.Total)
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrderToDTO(order))
}

// GetOrders godoc
// @Summary Orders of the customer
// @Description Newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} OrderDTO
// @Success 204 "No orders to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [get]
func (oh *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orders, err := oh.orderService.GetOrders(ctx, appContext.Phone(r.Context()))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, oh.mapOrdersToOrderDtoSlice(orders))
}

// GetOrder godoc
// @Summary Order by id
// @Tags admin
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} OrderDTO
// @Failure 400 {object} ErrorResponse "Invalid order id"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/orders/{id} [get]
func (oh *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	order, err := oh.orderService.GetOrder(ctx, orderID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToDTO(order))
}

// UpdateStatus godoc
// @Summary Change order status
// @Description Moving an order to delivered grants the cashback once; moving it to canceled takes a granted cashback back.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body UpdateStatusRequestDTO true "pending, processing, delivering, delivered or canceled"
// @Success 200 {object} OrderDTO
// @Failure 400 {object} ErrorResponse "Invalid order id or status"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/orders/{id}/status [patch]
func (oh *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := UpdateStatusRequestDTO{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgParseBody, http.StatusBadRequest))
		return
	}

	order, err := oh.orderService.UpdateStatus(ctx, orderID, models.OrderStatus(request.Status))
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToDTO(order))
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Takes back the cashback the order granted, then removes it.
// @Tags admin
// @Param id path int true "Order id"
// @Success 204 "Order deleted"
// @Failure 400 {object} ErrorResponse "Invalid order id"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/orders/{id} [delete]
func (oh *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), oh.contextTimeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if err = oh.orderService.DeleteOrder(ctx, orderID); err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseOrderID(r *http.Request) (int64, error) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, appErrors.NewWithCode(err, "Invalid order ID", http.StatusBadRequest)
	}
	return orderID, nil
}

func (oh *OrdersHandler) mapOrdersToOrderDtoSlice(slice *[]models.Order) OrderDTOSlice {
	responseSlice := make(OrderDTOSlice, 0, len(*slice))
	for i := range *slice {
		responseSlice = append(responseSlice, mapOrderToDTO(&(*slice)[i]))
	}
	return responseSlice
}

func mapOrderToDTO(order *models.Order) OrderDTO {
	return OrderDTO{
		ID:           order.ID,
		Phone:        order.Phone,
		Total:        order.Total,
		Status:       order.Status.String(),
		BonusAccrued: order.BonusAccrued,
		BonusAmount:  order.BonusAmount,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}
