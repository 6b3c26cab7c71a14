package model

import "time"

// ProductEntity represents the product table entity
type ProductEntity struct {
	ID             uint64     `db:"id" json:"id"`
	Title          string     `db:"prd_title" json:"prd_title"`
	Quantity       int        `db:"quantity" json:"quantity"`
	Price          float64    `db:"price" json:"price"`
	DiscountPrice  *float64   `db:"discount_price" json:"discount_price"`
	TypeProduct    string     `db:"type_product" json:"type_product"`
	SizeList       StringList `db:"prd_size_list" json:"prdSizeList"`
	SingleImage    *string    `db:"single_image" json:"single_image"`
	MultipleImages StringList `db:"multiple_images" json:"multiple_images"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// EffectivePrice returns the unit price after subtracting the optional flat
// discount. No floor is applied.
func (p *ProductEntity) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return p.Price - *p.DiscountPrice
	}
	return p.Price
}

// ProductRequest for creating a product (multipart form fields, images are
// handled separately by the storage collaborator)
type ProductRequest struct {
	Title         string   `json:"prd_title" validate:"required"`
	Quantity      int      `json:"quantity" validate:"required"`
	Price         float64  `json:"price" validate:"required"`
	DiscountPrice *float64 `json:"discount_price"`
	TypeProduct   string   `json:"type_product" validate:"required"`
	SizeList      []string `json:"prdSizeList" validate:"required,dive,required"`
}

// ProductUpdateRequest for updating a product. Image fields follow the upload
// rules in the product application: nil clears, a new upload replaces.
type ProductUpdateRequest struct {
	Title         string   `json:"prd_title"`
	Quantity      int      `json:"quantity"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	TypeProduct   string   `json:"type_product"`
	SizeList      []string `json:"prdSizeList"`
}
