package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ImageValidationService rejects image URLs that can never be fetched before
// they reach the wrapped ImageService.
type ImageValidationService struct {
	inner ImageService
}

func NewImageValidationService() ImageServiceWrapper {
	return &ImageValidationService{}
}

func (v *ImageValidationService) FilterImageFromURL(ctx context.Context, imageURL string) (string, error) {
	if err := validateImageURL(imageURL); err != nil {
		return "", fmt.Errorf("error during image url validation: %w", err)
	}

	return v.inner.FilterImageFromURL(ctx, imageURL)
}

func (v *ImageValidationService) DeleteLocalFiles(ctx context.Context, paths ...string) {
	v.inner.DeleteLocalFiles(ctx, paths...)
}

func (v *ImageValidationService) Wrap(wrapped ImageService) ImageService {
	v.inner = wrapped
	return v
}

// validateImageURL accepts absolute http(s) URLs with a host. The URL is
// checked exactly as it will be fetched.
func validateImageURL(imageURL string) error {
	if strings.TrimSpace(imageURL) != imageURL {
		return fmt.Errorf("%w: surrounding whitespace", ErrInvalidImageURL)
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImageURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidImageURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidImageURL)
	}

	return nil
}
