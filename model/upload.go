package model

import "io"

// ImageUpload is an uploaded image decoupled from the HTTP multipart form, so
// the product application only depends on the blob-storage collaborator.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ProductImages carries the image parts of a product create/update request.
// A nil Single on update clears the column; a present upload replaces it.
type ProductImages struct {
	Single  *ImageUpload
	Gallery []ImageUpload
}
