package adapter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/utils"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxImageSize = 20 << 20
	userAgent           = "image-filter/1.0"
)

type httpImageFetcher struct {
	client       *utils.HTTPClient
	maxImageSize int64
}

// NewHTTPImageFetcher returns an [ImageFetcher] backed by a resty client.
// Zero values in cfg fall back to package defaults.
func NewHTTPImageFetcher(cfg config.Adapter) ImageFetcher {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.MaxImageSize <= 0 {
		cfg.MaxImageSize = defaultMaxImageSize
	}

	cli := utils.NewHTTPClient(cfg.RequestTimeout, userAgent)
	cli.SetHeader("Accept", "image/*")

	return &httpImageFetcher{client: cli, maxImageSize: cfg.MaxImageSize}
}

func (h *httpImageFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchingImage, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if resp.RawResponse.ContentLength > h.maxImageSize {
		return nil, fmt.Errorf("%w: content length %d", ErrImageTooLarge, resp.RawResponse.ContentLength)
	}

	// read one byte past the limit to detect oversized bodies without a length
	data, err := io.ReadAll(io.LimitReader(body, h.maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetchingImage, err)
	}
	if int64(len(data)) > h.maxImageSize {
		return nil, ErrImageTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	return data, nil
}
