package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/novera/internal/app"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/service"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/internal/validators"
)

// errorMapping pairs a sentinel error with the response it produces.
// An empty detail means the error text itself is shown.
type errorMapping struct {
	target error
	status int
	detail string
}

// errorMappings is ordered: the first target matched by errors.Is wins.
var errorMappings = []errorMapping{
	{store.ErrUsernameAlreadyExists, http.StatusBadRequest, app.MsgUsernameAlreadyRegistered},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	{validators.ErrInvalidStatus, http.StatusBadRequest, app.MsgInvalidStatus},
	{store.ErrInvalidStatusValue, http.StatusBadRequest, app.MsgInvalidStatus},
	{validators.ErrValidationFailed, http.StatusBadRequest, ""},
	{validators.ErrInvalidPage, http.StatusBadRequest, app.MsgInvalidPagination},
	{validators.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidNovelID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidForm, http.StatusBadRequest, app.MsgInvalidForm},
	{ErrInvalidNovelID, http.StatusBadRequest, app.MsgInvalidNovelID},
	{ErrInvalidPageQuery, http.StatusBadRequest, app.MsgInvalidPagination},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgIncorrectCredentials},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{utils.ErrInvalidBearerHeader, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthenticated},
	{ErrUserNotInContext, http.StatusUnauthorized, app.MsgNotAuthenticated},

	{service.ErrNotNovelOwner, http.StatusForbidden, app.MsgNotAuthorized},

	{store.ErrNovelNotFound, http.StatusNotFound, app.MsgNovelNotFound},
	{store.ErrStatusNotFound, http.StatusNotFound, app.MsgStatusNotFound},

	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func lookupError(err error) (errorMapping, bool) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping, true
		}
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	if mapping, ok := lookupError(err); ok {
		return mapping.status
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Unmapped errors
// never leak their text.
func detailFromError(err error) string {
	mapping, ok := lookupError(err)
	if !ok {
		return http.StatusText(http.StatusInternalServerError)
	}
	if mapping.detail != "" {
		return mapping.detail
	}

	// keep only the part starting at the sentinel, dropping wrapping prefixes
	text := err.Error()
	if i := strings.Index(text, mapping.target.Error()); i >= 0 {
		return text[i:]
	}
	return mapping.target.Error()
}

// writeError logs err with the request-scoped logger and writes the mapped
// {"detail": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err), status)
}
