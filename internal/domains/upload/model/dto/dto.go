package dto

import (
	"mime/multipart"
)

type UploadRequest struct {
	File     *multipart.FileHeader `json:"file" validate:"required"`
	FileBody multipart.File        `json:"-"`
}

// InlineUploadRequest carries the image as a base64 data URI.
type InlineUploadRequest struct {
	Name string `json:"name" validate:"max=255"`
	Data string `json:"data" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=7"`
}

type UploadResponse struct {
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type DeleteRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}
