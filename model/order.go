package model

import (
	"time"

	"github.com/mahmudhasan/clothing-shop/constant"
)

type CustomerInfo struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	ShippingType string `json:"shipping_type" validate:"required"`
}

type PaymentOption struct {
	Method            string  `json:"method" validate:"required"`
	TransactionNumber *string `json:"transaction_number"`
}

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	CustomerInfo  CustomerInfo       `json:"customer_info" validate:"required"`
	PaymentOption PaymentOption      `json:"payment_option" validate:"required"`
	Items         []OrderItemRequest `json:"product_items" validate:"required,min=1,dive"`
}

// OrderEntity represents the orders table entity
type OrderEntity struct {
	ID                uint64               `db:"id" json:"id"`
	CustomerName      string               `db:"customer_name" json:"customer_name"`
	Phone             string               `db:"phone" json:"phone"`
	Address           string               `db:"address" json:"address"`
	ShippingType      string               `db:"shipping_type" json:"shipping_type"`
	PaymentMethod     string               `db:"payment_method" json:"payment_method"`
	TransactionNumber *string              `db:"transaction_number" json:"transaction_number"`
	InvoiceNumber     string               `db:"invoice_number" json:"invoice_number"`
	PurchaseAmount    float64              `db:"purchase_amount" json:"purchase_amount"`
	Status            constant.OrderStatus `db:"status" json:"status"`
	CreatedAt         time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `db:"updated_at" json:"updated_at"`
}

// InsertOrderTxItem carries the column values for the order insert inside the
// creation transaction. PurchaseAmount is set afterwards, once all items
// succeeded.
type InsertOrderTxItem struct {
	CustomerName      string
	Phone             string
	Address           string
	ShippingType      string
	PaymentMethod     string
	TransactionNumber *string
	InvoiceNumber     string
	Status            constant.OrderStatus
}

type InsertOrderItemTx struct {
	OrderID    uint64
	ProductID  uint64
	Size       string
	Quantity   int
	TotalPrice float64
}

// OrderItemRow is the order_item row joined with the product's current
// display fields. The join reflects the product as it is now, not as it was
// when the order was placed.
type OrderItemRow struct {
	ID         uint64  `db:"id"`
	OrderID    uint64  `db:"order_id"`
	ProductID  uint64  `db:"product_id"`
	Size       string  `db:"size"`
	Quantity   int     `db:"quantity"`
	TotalPrice float64 `db:"total_price"`
	ImageURL   *string `db:"single_image"`
	Title      *string `db:"prd_title"`
}

// OrderItemView is the read model returned to clients.
type OrderItemView struct {
	ID           uint64  `json:"id"`
	ProductID    uint64  `json:"product_id"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
	ImageURL     *string `json:"image_url"`
	ProductTitle string  `json:"product_title"`
}

// OrderView is an OrderEntity projected for clients, with a human-readable
// order date and the item read models attached.
type OrderView struct {
	OrderEntity
	OrderDate string          `json:"order_date"`
	Items     []OrderItemView `json:"items"`
}
