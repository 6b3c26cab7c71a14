package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/mahmudhasan/clothing-shop/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error)
	Insert(ctx context.Context, p *model.ProductEntity) (uint64, error)
	Update(ctx context.Context, p *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const productColumns = `id, prd_title, quantity, price, discount_price, type_product, prd_size_list, single_image, multiple_images, created_at, updated_at`

func (r *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	products := make([]model.ProductEntity, 0)
	q := "SELECT " + productColumns + " FROM products ORDER BY id"
	if err := r.conn.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var p model.ProductEntity
	q := "SELECT " + productColumns + " FROM products WHERE id = ?"
	if err := r.conn.GetContext(ctx, &p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error) {
	var p model.ProductEntity
	q := "SELECT " + productColumns + " FROM products WHERE id = ?"
	if err := tx.GetContext(ctx, &p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) Insert(ctx context.Context, p *model.ProductEntity) (uint64, error) {
	q := `INSERT INTO products (prd_title, quantity, price, discount_price, type_product, prd_size_list, single_image, multiple_images)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.conn.ExecContext(ctx, q, p.Title, p.Quantity, p.Price, p.DiscountPrice, p.TypeProduct, p.SizeList, p.SingleImage, p.MultipleImages)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, p *model.ProductEntity) error {
	q := `UPDATE products SET prd_title = ?, quantity = ?, price = ?, discount_price = ?, type_product = ?, prd_size_list = ?, single_image = ?, multiple_images = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, q, p.Title, p.Quantity, p.Price, p.DiscountPrice, p.TypeProduct, p.SizeList, p.SingleImage, p.MultipleImages, p.ID)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}
