package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	orderrepo "github.com/mahmudhasan/clothing-shop/repository/order"
	productrepo "github.com/mahmudhasan/clothing-shop/repository/product"
	txrepo "github.com/mahmudhasan/clothing-shop/repository/tx"
	"github.com/mahmudhasan/clothing-shop/thirdparty/rabbitmq"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	"github.com/mahmudhasan/clothing-shop/utils/logger"
	"go.uber.org/zap"
)

// orderDateLayout renders "04 March, 2024 at 10:30am".
const orderDateLayout = "02 January, 2006 at 03:04pm"

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderEntity, error)
	ListOrders(ctx context.Context) ([]model.OrderView, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderView, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.OrderEntity, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
}

type orderAppImpl struct {
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{txRepo: txRepo, orderRepo: orderRepo, productRepo: productRepo, publisher: publisher}
}

// CreateOrder persists an order and all of its items inside one transaction.
// Line totals are snapshots of the product's effective price at creation time
// and are never recomputed. Any item failure rolls back the whole order.
func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderEntity, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	invoiceNumber := uuid.NewString()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		CustomerName:      req.CustomerInfo.CustomerName,
		Phone:             req.CustomerInfo.Phone,
		Address:           req.CustomerInfo.Address,
		ShippingType:      req.CustomerInfo.ShippingType,
		PaymentMethod:     req.PaymentOption.Method,
		TransactionNumber: req.PaymentOption.TransactionNumber,
		InvoiceNumber:     invoiceNumber,
		Status:            constant.OrderStatusPending,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var purchaseAmount float64
	for _, item := range req.Items {
		product, err := s.productRepo.GetByIDTx(ctx, tx, item.ProductID)
		if err != nil {
			logger.Error("[CreateOrder] get product", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("product not found. product id: %d", item.ProductID))
		}

		totalPrice := float64(item.Quantity) * product.EffectivePrice()

		if err := s.orderRepo.InsertOrderItemTx(ctx, tx, &model.InsertOrderItemTx{
			OrderID:    orderID,
			ProductID:  item.ProductID,
			Size:       item.Size,
			Quantity:   item.Quantity,
			TotalPrice: totalPrice,
		}); err != nil {
			logger.Error("[CreateOrder] insert item", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		purchaseAmount += totalPrice
	}

	if err := s.orderRepo.UpdatePurchaseAmountTx(ctx, tx, orderID, purchaseAmount); err != nil {
		logger.Error("[CreateOrder] update purchase amount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	now := time.Now()
	order := &model.OrderEntity{
		ID:                orderID,
		CustomerName:      req.CustomerInfo.CustomerName,
		Phone:             req.CustomerInfo.Phone,
		Address:           req.CustomerInfo.Address,
		ShippingType:      req.CustomerInfo.ShippingType,
		PaymentMethod:     req.PaymentOption.Method,
		TransactionNumber: req.PaymentOption.TransactionNumber,
		InvoiceNumber:     invoiceNumber,
		PurchaseAmount:    purchaseAmount,
		Status:            constant.OrderStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if s.publisher != nil {
		msg := rabbitmq.OrderPlacedMessage{
			OrderID:        orderID,
			InvoiceNumber:  invoiceNumber,
			PurchaseAmount: purchaseAmount,
			PlacedAt:       now,
		}
		if err := s.publisher.PublishOrderPlaced(msg); err != nil {
			logger.Error("[CreateOrder] publish order placed", zap.String("error", err.Error()))
		}
	}

	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	views := make([]model.OrderView, 0, len(orders))
	for _, ord := range orders {
		view, err := s.buildOrderView(ctx, ord)
		if err != nil {
			logger.Error("[ListOrders] list order items", zap.Uint64("order_id", ord.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderView, error) {
	ord, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ord == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Order not found")
	}

	view, err := s.buildOrderView(ctx, *ord)
	if err != nil {
		logger.Error("[GetOrder] list order items", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return view, nil
}

// UpdateOrderStatus moves an order along the status state machine. The
// transition table is exhaustive; same-state transitions are rejected.
func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.OrderEntity, error) {
	if !constant.ValidOrderStatus(status) {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid status. allow status: pending, processing, delivered, cancelled")
	}

	ord, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ord == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Order not found")
	}

	if !constant.CanTransition(ord.Status, status) {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidTransition, fmt.Sprintf("invalid status transition. current status: %s", ord.Status))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Error("[UpdateOrderStatus] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	oldStatus := ord.Status
	ord.Status = status
	ord.UpdatedAt = time.Now()

	if s.publisher != nil {
		msg := rabbitmq.OrderStatusChangedMessage{
			OrderID:   orderID,
			OldStatus: oldStatus,
			NewStatus: status,
			ChangedAt: ord.UpdatedAt,
		}
		if err := s.publisher.PublishOrderStatusChanged(msg); err != nil {
			logger.Error("[UpdateOrderStatus] publish status changed", zap.String("error", err.Error()))
		}
	}

	return ord, nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderID uint64) error {
	ord, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[DeleteOrder] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if ord == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "Order not found")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.orderRepo.DeleteOrderTx(ctx, tx, orderID); err != nil {
		logger.Error("[DeleteOrder] delete order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// buildOrderView projects an order entity into its read model. The item rows
// carry the product's current title and image, so the view reflects catalog
// edits made after the order was placed.
func (s *orderAppImpl) buildOrderView(ctx context.Context, ord model.OrderEntity) (*model.OrderView, error) {
	rows, err := s.orderRepo.ListOrderItems(ctx, ord.ID)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItemView, 0, len(rows))
	for _, row := range rows {
		item := model.OrderItemView{
			ID:         row.ID,
			ProductID:  row.ProductID,
			Size:       row.Size,
			Quantity:   row.Quantity,
			TotalPrice: row.TotalPrice,
			ImageURL:   row.ImageURL,
		}
		if row.Title != nil {
			item.ProductTitle = *row.Title
		}
		items = append(items, item)
	}

	return &model.OrderView{
		OrderEntity: ord,
		OrderDate:   ord.CreatedAt.Format(orderDateLayout),
		Items:       items,
	}, nil
}
