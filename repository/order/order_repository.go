package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemTx(ctx context.Context, tx *sqlx.Tx, item *model.InsertOrderItemTx) error
	UpdatePurchaseAmountTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, amount float64) error
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListOrders(ctx context.Context) ([]model.OrderEntity, error)
	ListOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemRow, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error
	DeleteOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, customer_name, phone, address, shipping_type, payment_method, transaction_number, invoice_number, purchase_amount, status, created_at, updated_at`

	// order items joined with the product's current display fields; the
	// product may have been deleted or changed since the order was placed,
	// hence the LEFT JOIN and nullable columns.
	listOrderItemsQuery = `SELECT oi.id, oi.order_id, oi.product_id, oi.size, oi.quantity, oi.total_price, p.single_image, p.prd_title
FROM order_items oi
LEFT JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = ?
ORDER BY oi.id`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	q := `INSERT INTO orders (customer_name, phone, address, shipping_type, payment_method, transaction_number, invoice_number, purchase_amount, status)
VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`
	res, err := tx.ExecContext(ctx, q, req.CustomerName, req.Phone, req.Address, req.ShippingType, req.PaymentMethod, req.TransactionNumber, req.InvoiceNumber, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemTx(ctx context.Context, tx *sqlx.Tx, item *model.InsertOrderItemTx) error {
	q := "INSERT INTO order_items (order_id, product_id, size, quantity, total_price) VALUES (?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q, item.OrderID, item.ProductID, item.Size, item.Quantity, item.TotalPrice)
	return err
}

func (r *SQL) UpdatePurchaseAmountTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, amount float64) error {
	_, err := tx.ExecContext(ctx, "UPDATE orders SET purchase_amount = ? WHERE id = ?", amount, orderID)
	return err
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	q := "SELECT " + orderColumns + " FROM orders WHERE id = ?"
	if err := r.conn.GetContext(ctx, &order, q, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQL) ListOrders(ctx context.Context) ([]model.OrderEntity, error) {
	orders := make([]model.OrderEntity, 0)
	q := "SELECT " + orderColumns + " FROM orders ORDER BY id DESC"
	if err := r.conn.SelectContext(ctx, &orders, q); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) ListOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemRow, error) {
	items := make([]model.OrderItemRow, 0)
	if err := r.conn.SelectContext(ctx, &items, listOrderItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) DeleteOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	// no FK cascade in the schema; items go first
	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", orderID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", orderID)
	return err
}
