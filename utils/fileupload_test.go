package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		size         int64
		expectedCode string
	}{
		{"png allowed", "photo.png", 1024, ""},
		{"jpg allowed", "photo.jpg", 1024, ""},
		{"uppercase extension allowed", "PHOTO.JPEG", 1024, ""},
		{"webp allowed", "photo.webp", 1024, ""},
		{"executable rejected", "payload.exe", 1024, "INVALID_FILE_FORMAT"},
		{"no extension rejected", "photo", 1024, "INVALID_FILE_FORMAT"},
		{"gif rejected", "animation.gif", 1024, "INVALID_FILE_FORMAT"},
		{"oversized rejected", "huge.png", MaxFileSize + 1, "FILE_TOO_LARGE"},
		{"at the limit allowed", "big.png", MaxFileSize, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			err := ValidateImageFile(header)
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			uploadErr, ok := err.(*FileUploadError)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedCode, uploadErr.Code)
		})
	}
}

func TestImageContentType(t *testing.T) {
	assert.Equal(t, "image/png", ImageContentType("photo.png"))
	assert.Equal(t, "image/jpeg", ImageContentType("photo.JPG"))
	assert.Equal(t, "image/webp", ImageContentType("photo.webp"))
	assert.Equal(t, "application/octet-stream", ImageContentType("document.pdf"))
}
