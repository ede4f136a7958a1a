package model

import (
	"fmt"
	"mime"
	"path"
	"slices"
	"strings"

	"chefbook/shared/failure"

	"github.com/google/uuid"
)

const (
	EntityName = "upload"
	Directory  = "uploads"

	MaxFileSizeMB = 5
	bytesPerMB    = 1 << 20
)

var ImageContentTypes = []string{"image/png", "image/jpg", "image/jpeg", "image/webp"}

// CheckImage rejects multipart files that are not images or exceed MaxFileSizeMB.
func CheckImage(contentType string, size int64) error {
	if !slices.Contains(ImageContentTypes, contentType) {
		return failure.Validation(fmt.Sprintf("file must be one of %s", strings.Join(ImageContentTypes, ", ")))
	}

	if size > MaxFileSizeMB*bytesPerMB {
		return failure.Validation(fmt.Sprintf("file must not exceed %d MB", MaxFileSizeMB))
	}

	return nil
}

// ObjectName gives every stored file a fresh name, keeping a recognizable extension.
func ObjectName(original, contentType string) string {
	ext := strings.ToLower(path.Ext(original))

	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}

	return uuid.NewString() + ext
}
