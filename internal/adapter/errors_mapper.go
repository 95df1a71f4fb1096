package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %s", ErrImageNotFound, resp.Status())
	default:
		status := resp.Status()
		if status == "" {
			status = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), status)
	}
}
