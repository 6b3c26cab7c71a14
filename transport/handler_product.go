package transport

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	validatorx "github.com/mahmudhasan/clothing-shop/utils/validator"
)

const maxUploadSize = 32 << 20 // 32 MiB

// formValues reads a repeated form field, accepting both the plain key and
// the PHP-style "key[]" the admin frontend sends.
func formValues(form *multipart.Form, key string) []string {
	if vs, ok := form.Value[key]; ok {
		return vs
	}
	return form.Value[key+"[]"]
}

func formFiles(form *multipart.Form, key string) []*multipart.FileHeader {
	if fs, ok := form.File[key]; ok {
		return fs
	}
	return form.File[key+"[]"]
}

func firstValue(form *multipart.Form, key string) string {
	vs := formValues(form, key)
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// collectImages opens the uploaded image parts. The returned closer must run
// after the application has consumed the readers.
func collectImages(form *multipart.Form) (*model.ProductImages, func(), error) {
	images := &model.ProductImages{}
	var opened []multipart.File
	closer := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	if fhs := formFiles(form, "single_image"); len(fhs) > 0 {
		f, err := fhs[0].Open()
		if err != nil {
			closer()
			return nil, nil, err
		}
		opened = append(opened, f)
		images.Single = &model.ImageUpload{Filename: fhs[0].Filename, Content: f}
	}

	for _, fh := range formFiles(form, "multiple_images") {
		f, err := fh.Open()
		if err != nil {
			closer()
			return nil, nil, err
		}
		opened = append(opened, f)
		images.Gallery = append(images.Gallery, model.ImageUpload{Filename: fh.Filename, Content: f})
	}

	return images, closer, nil
}

func parseDiscount(raw string) (*float64, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListProducts handler
// @Summary List products
// @Tags Product
// @Produce json
// @Success 200 {array} model.ProductEntity
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} transport.messageResponse
// @Router /edit-products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Description Create a product from a multipart form, uploading its images
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.ProductEntity
// @Failure 422 {object} transport.messageResponse
// @Router /add-products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	form := r.MultipartForm

	quantity, err := strconv.Atoi(firstValue(form, "quantity"))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	price, err := strconv.ParseFloat(firstValue(form, "price"), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	discount, err := parseDiscount(firstValue(form, "discount_price"))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := &model.ProductRequest{
		Title:         firstValue(form, "prd_title"),
		Quantity:      quantity,
		Price:         price,
		DiscountPrice: discount,
		TypeProduct:   firstValue(form, "type_product"),
		SizeList:      formValues(form, "prdSizeList"),
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	images, closeImages, err := collectImages(form)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer closeImages()

	res, err := s.ProductApp.CreateProduct(r.Context(), req, images)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Description Update a product; a new image upload replaces the stored one,
// an absent image part clears it
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} transport.messageResponse
// @Router /update-products/{id} [post]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	form := r.MultipartForm

	quantity, err := strconv.Atoi(firstValue(form, "quantity"))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	price, err := strconv.ParseFloat(firstValue(form, "price"), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	discount, err := parseDiscount(firstValue(form, "discount_price"))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := &model.ProductUpdateRequest{
		Title:         firstValue(form, "prd_title"),
		Quantity:      quantity,
		Price:         price,
		DiscountPrice: discount,
		TypeProduct:   firstValue(form, "type_product"),
		SizeList:      formValues(form, "prdSizeList"),
	}

	images, closeImages, err := collectImages(form)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer closeImages()

	res, err := s.ProductApp.UpdateProduct(r.Context(), id, req, images)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} transport.messageResponse
// @Failure 404 {object} transport.messageResponse
// @Router /delete-products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, messageResponse{Message: "Product deleted successfully"})
}
