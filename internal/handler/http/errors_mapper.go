package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/image-filter/internal/app"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/MKhiriev/image-filter/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrMissingAuthorizationHeader:   {http.StatusUnauthorized, app.MsgAuthorizationHeaderRequired},
	service.ErrMalformedAuthorizationHeader: {http.StatusUnauthorized, app.MsgAuthorizationHeaderNotValid},
	service.ErrIncorrectToken:               {http.StatusUnauthorized, app.MsgTokenIsIncorrect},

	ErrImageURLRequired: {http.StatusUnauthorized, app.MsgImageURLRequired},

	errSendingFile: {http.StatusInternalServerError, app.MsgCouldNotSendFile},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError writes the {"message": ...} body mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteMessage(w, resp.message, resp.status)
}
