package product

import (
	"context"

	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	productrepo "github.com/mahmudhasan/clothing-shop/repository/product"
	"github.com/mahmudhasan/clothing-shop/thirdparty/storage"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	"github.com/mahmudhasan/clothing-shop/utils/logger"
	"go.uber.org/zap"
)

// galleryPlaceholder is stored when a product is created without gallery
// images, so the column is never an empty list for legacy clients.
const galleryPlaceholder = "No Data in Multiple Image Field"

type ProductApp interface {
	ListProducts(ctx context.Context) ([]model.ProductEntity, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest, images *model.ProductImages) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.ProductUpdateRequest, images *model.ProductImages) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
	storage     storage.BlobStorage
}

func NewProductApp(productRepo productrepo.ProductRepository, blobStorage storage.BlobStorage) ProductApp {
	return &productAppImpl{productRepo: productRepo, storage: blobStorage}
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.ProductEntity, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Product not found")
	}
	return product, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductRequest, images *model.ProductImages) (*model.ProductEntity, error) {
	if images == nil || images.Single == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Image not found in: single_image")
	}

	singleURL, err := s.storage.Put(images.Single.Filename, images.Single.Content)
	if err != nil {
		logger.Error("[CreateProduct] upload single image", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	gallery := make(model.StringList, 0, len(images.Gallery))
	for _, img := range images.Gallery {
		url, err := s.storage.Put(img.Filename, img.Content)
		if err != nil {
			logger.Error("[CreateProduct] upload gallery image", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		gallery = append(gallery, url)
	}
	if len(gallery) == 0 {
		gallery = model.StringList{galleryPlaceholder}
	}

	entity := &model.ProductEntity{
		Title:          req.Title,
		Quantity:       req.Quantity,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		TypeProduct:    req.TypeProduct,
		SizeList:       model.StringList(req.SizeList),
		SingleImage:    &singleURL,
		MultipleImages: gallery,
	}

	id, err := s.productRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.productRepo.GetByID(ctx, id)
	if err != nil || created == nil {
		logger.Error("[CreateProduct] error reading created product", zap.Uint64("product_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.ProductUpdateRequest, images *model.ProductImages) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "Product not found")
	}

	product.Title = req.Title
	product.Quantity = req.Quantity
	product.Price = req.Price
	product.DiscountPrice = req.DiscountPrice
	product.TypeProduct = req.TypeProduct
	product.SizeList = model.StringList(req.SizeList)

	// image rules follow the upload form: a new file replaces the column,
	// an absent part clears it
	if images == nil || images.Single == nil {
		product.SingleImage = nil
	} else {
		url, err := s.storage.Put(images.Single.Filename, images.Single.Content)
		if err != nil {
			logger.Error("[UpdateProduct] upload single image", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		product.SingleImage = &url
	}

	if images == nil || len(images.Gallery) == 0 {
		product.MultipleImages = nil
	} else {
		gallery := make(model.StringList, 0, len(images.Gallery))
		for _, img := range images.Gallery {
			url, err := s.storage.Put(img.Filename, img.Content)
			if err != nil {
				logger.Error("[UpdateProduct] upload gallery image", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			gallery = append(gallery, url)
		}
		product.MultipleImages = gallery
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "Product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
