package service

import (
	"fmt"
	"strings"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/pkg/config"
)

// imagePolicy enforces the upload size cap on inline image payloads and
// turns stored relative paths into servable URLs.
type imagePolicy struct {
	baseURL  string
	maxBytes int64
}

func newImagePolicy(cfg config.UploadsConfig) imagePolicy {
	return imagePolicy{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxSizeBytes,
	}
}

// validate rejects inline base64 payloads over the configured cap.
// Empty values and already-hosted URLs pass through.
func (p imagePolicy) validate(payload string) error {
	if payload == "" || strings.Contains(payload, "://") {
		return nil
	}
	data := payload
	if strings.HasPrefix(data, "data:") {
		if i := strings.IndexByte(data, ','); i >= 0 {
			data = data[i+1:]
		}
	}
	// Base64 decodes to three bytes per four characters
	decoded := int64(len(data)) * 3 / 4
	if p.maxBytes > 0 && decoded > p.maxBytes {
		return fmt.Errorf("%w: got ~%d bytes, limit %d", domain.ErrImageTooLarge, decoded, p.maxBytes)
	}
	return nil
}

// resolve prefixes the uploads base URL onto stored relative paths.
// Absolute URLs and inline payloads are returned unchanged.
func (p imagePolicy) resolve(stored string) string {
	if stored == "" || p.baseURL == "" ||
		strings.Contains(stored, "://") || strings.HasPrefix(stored, "data:") {
		return stored
	}
	return p.baseURL + "/" + strings.TrimLeft(stored, "/")
}
