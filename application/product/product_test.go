package product_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appproduct "github.com/mahmudhasan/clothing-shop/application/product"
	"github.com/mahmudhasan/clothing-shop/constant"
	productmocks "github.com/mahmudhasan/clothing-shop/mocks/repository/product"
	storagemocks "github.com/mahmudhasan/clothing-shop/mocks/thirdparty/storage"
	"github.com/mahmudhasan/clothing-shop/model"
	cerr "github.com/mahmudhasan/clothing-shop/utils/errors"
	"github.com/stretchr/testify/mock"
)

func float64Ptr(v float64) *float64 { return &v }

func singleImage() *model.ImageUpload {
	return &model.ImageUpload{Filename: "shirt.jpg", Content: strings.NewReader("img")}
}

func TestProductApp_CreateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		storage     *storagemocks.BlobStorage
	}
	type args struct {
		req    *model.ProductRequest
		images *model.ProductImages
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		errMessage string
	}{
		{
			name: "success: single image only gets gallery placeholder",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			args: args{
				req: &model.ProductRequest{
					Title:         "Denim Jacket",
					Quantity:      5,
					Price:         100,
					DiscountPrice: float64Ptr(10),
					TypeProduct:   "jacket",
					SizeList:      []string{"M", "L"},
				},
				images: &model.ProductImages{Single: singleImage()},
			},
			mockCall: func(f fields) {
				f.storage.On("Put", "shirt.jpg", mock.Anything).
					Return("http://localhost:8080/uploads/images/1_00001.jpg", nil).Once()
				f.productRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
					return p.Title == "Denim Jacket" &&
						p.SingleImage != nil &&
						len(p.MultipleImages) == 1 &&
						p.MultipleImages[0] == "No Data in Multiple Image Field"
				})).Return(uint64(7), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Title: "Denim Jacket",
				}, nil).Once()
			},
		},
		{
			name: "success: gallery images uploaded alongside single",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			args: args{
				req: &model.ProductRequest{Title: "Polo", Quantity: 3, Price: 40, TypeProduct: "shirt"},
				images: &model.ProductImages{
					Single: singleImage(),
					Gallery: []model.ImageUpload{
						{Filename: "a.jpg", Content: strings.NewReader("a")},
						{Filename: "b.jpg", Content: strings.NewReader("b")},
					},
				},
			},
			mockCall: func(f fields) {
				f.storage.On("Put", "shirt.jpg", mock.Anything).Return("u0", nil).Once()
				f.storage.On("Put", "a.jpg", mock.Anything).Return("u1", nil).Once()
				f.storage.On("Put", "b.jpg", mock.Anything).Return("u2", nil).Once()
				f.productRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
					return len(p.MultipleImages) == 2 && p.MultipleImages[0] == "u1" && p.MultipleImages[1] == "u2"
				})).Return(uint64(8), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(8)).Return(&model.ProductEntity{ID: 8}, nil).Once()
			},
		},
		{
			name: "error: missing single image",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			args: args{
				req:    &model.ProductRequest{Title: "Polo", Quantity: 3, Price: 40, TypeProduct: "shirt"},
				images: &model.ProductImages{},
			},
			mockCall:   nil,
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
			errMessage: "Image not found in: single_image",
		},
		{
			name: "error: storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			args: args{
				req:    &model.ProductRequest{Title: "Polo", Quantity: 3, Price: 40, TypeProduct: "shirt"},
				images: &model.ProductImages{Single: singleImage()},
			},
			mockCall: func(f fields) {
				f.storage.On("Put", "shirt.jpg", mock.Anything).Return("", errors.New("disk full")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: insert failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			args: args{
				req:    &model.ProductRequest{Title: "Polo", Quantity: 3, Price: 40, TypeProduct: "shirt"},
				images: &model.ProductImages{Single: singleImage()},
			},
			mockCall: func(f fields) {
				f.storage.On("Put", "shirt.jpg", mock.Anything).Return("u0", nil).Once()
				f.productRepo.On("Insert", mock.Anything, mock.Anything).Return(uint64(0), errors.New("insert error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, tt.fields.storage)

			_, err := app.CreateProduct(context.Background(), tt.args.req, tt.args.images)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errMessage != "" && ce.Error() != tt.errMessage {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.errMessage)
				}
			}
		})
	}
}

func TestProductApp_UpdateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		storage     *storagemocks.BlobStorage
	}
	updateReq := &model.ProductUpdateRequest{
		Title:       "Denim Jacket v2",
		Quantity:    9,
		Price:       120,
		TypeProduct: "jacket",
		SizeList:    []string{"L"},
	}
	existing := func() *model.ProductEntity {
		url := "old.jpg"
		return &model.ProductEntity{
			ID:             7,
			Title:          "Denim Jacket",
			SingleImage:    &url,
			MultipleImages: model.StringList{"g1.jpg"},
		}
	}
	tests := []struct {
		name     string
		fields   fields
		images   *model.ProductImages
		mockCall func(f fields)
		check    func(t *testing.T, got *model.ProductEntity)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new single image replaces, absent gallery clears",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			images: &model.ProductImages{Single: singleImage()},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(existing(), nil).Once()
				f.storage.On("Put", "shirt.jpg", mock.Anything).Return("new.jpg", nil).Once()
				f.productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
					return p.Title == "Denim Jacket v2" &&
						p.SingleImage != nil && *p.SingleImage == "new.jpg" &&
						p.MultipleImages == nil
				})).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.ProductEntity) {
				if got.SingleImage == nil || *got.SingleImage != "new.jpg" {
					t.Fatalf("single image = %v, want new.jpg", got.SingleImage)
				}
			},
		},
		{
			name: "success: no files clears both image columns",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			images: nil,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(existing(), nil).Once()
				f.productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
					return p.SingleImage == nil && p.MultipleImages == nil
				})).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.ProductEntity) {
				if got.SingleImage != nil {
					t.Fatalf("single image = %v, want nil", got.SingleImage)
				}
			},
		},
		{
			name: "error: product not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			images: nil,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, tt.fields.storage)

			got, err := app.UpdateProduct(context.Background(), 7, updateReq, tt.images)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	blobStorage := storagemocks.NewBlobStorage(t)

	productRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil).Once()

	app := appproduct.NewProductApp(productRepo, blobStorage)

	_, err := app.GetProduct(context.Background(), 404)
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
	}
	if ce.Error() != "Product not found" {
		t.Fatalf("error message = %q", ce.Error())
	}
}

func TestProductApp_DeleteProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		storage     *storagemocks.BlobStorage
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			id: 7,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{ID: 7}, nil).Once()
				f.productRepo.On("Delete", mock.Anything, uint64(7)).Return(nil).Once()
			},
		},
		{
			name: "error: not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			id: 404,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: delete fails",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				storage:     storagemocks.NewBlobStorage(t),
			},
			id: 7,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{ID: 7}, nil).Once()
				f.productRepo.On("Delete", mock.Anything, uint64(7)).Return(errors.New("delete error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, tt.fields.storage)

			err := app.DeleteProduct(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
