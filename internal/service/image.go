package service

import (
	"encoding/base64"
	"strings"

	apperrors "foodgram-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

const maxImageBytes = 10 << 20

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DecodedImage is an image payload ready for storage
type DecodedImage struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeImage parses "data:image/<fmt>;base64,<payload>" (or bare base64) and
// checks the decoded bytes are a supported image type
func DecodeImage(value string) (*DecodedImage, error) {
	payload := strings.TrimSpace(value)
	if payload == "" {
		return nil, apperrors.NewValidationError("image", "this field is required")
	}

	if strings.HasPrefix(payload, "data:") {
		header, body, found := strings.Cut(payload, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, apperrors.NewValidationError("image", "expected a base64 data URI")
		}
		payload = body
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > maxImageBytes {
		return nil, apperrors.NewValidationError("image", "image is too large")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.NewValidationError("image", "image is not valid base64")
	}

	detected := mimetype.Detect(data)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return nil, apperrors.NewValidationError("image", "unsupported image type "+detected.String())
	}

	return &DecodedImage{Data: data, ContentType: detected.String(), Extension: ext}, nil
}
