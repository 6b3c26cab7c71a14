package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	validatorx "github.com/mahmudhasan/clothing-shop/utils/validator"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func parseIDVar(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// CreateOrder handler
// @Summary Create order
// @Description Create an order with its line items in one transaction
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 201 {object} model.OrderEntity
// @Failure 404 {object} transport.messageResponse
// @Failure 422 {object} transport.messageResponse
// @Router /order [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListOrders handler
// @Summary List orders
// @Description List all orders with item read models
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderView
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Description Get a single order with its items
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderView
// @Failure 404 {object} transport.messageResponse
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Update order status
// @Description Move an order along the status state machine
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body transport.updateOrderStatusRequest true "Status Request"
// @Success 200 {object} model.OrderEntity
// @Failure 404 {object} transport.messageResponse
// @Failure 422 {object} transport.messageResponse
// @Router /update-order/{id} [post]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.UpdateOrderStatus(r.Context(), id, constant.OrderStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteOrder handler
// @Summary Delete order
// @Description Hard-delete an order and its items
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} transport.messageResponse
// @Failure 404 {object} transport.messageResponse
// @Router /order/{id} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, messageResponse{Message: "Order deleted successfully"})
}
