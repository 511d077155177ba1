package service_test

import (
	"encoding/base64"
	"testing"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	image, err := service.DecodeImage(pngDataURI)

	require.NoError(t, err)
	assert.Equal(t, "image/png", image.ContentType)
	assert.Equal(t, ".png", image.Extension)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), image.Data[:8])
}

func TestDecodeImageBareBase64(t *testing.T) {
	gif := base64.StdEncoding.EncodeToString([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))

	image, err := service.DecodeImage(gif)

	require.NoError(t, err)
	assert.Equal(t, "image/gif", image.ContentType)
	assert.Equal(t, ".gif", image.Extension)
}

func TestDecodeImageRejects(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"not base64 uri", "data:image/png,rawbytes"},
		{"broken base64", "data:image/png;base64,###"},
		{"plain text", "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("just some text"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.DecodeImage(tt.value)

			verr, ok := apperrors.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, "image", verr.Field)
		})
	}
}
