package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultSkip  uint64 = 0
	defaultLimit uint64 = 100
)

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeLoginRequest accepts OAuth2-style form credentials and, for
// convenience, a JSON body with the same fields.
func decodeLoginRequest(r *http.Request) (models.LoginRequest, error) {
	var input models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := decodeJSON(r, &input)
		return input, err
	}

	if err := r.ParseForm(); err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	input.Username = r.PostForm.Get("username")
	input.Password = r.PostForm.Get("password")

	return input, nil
}

func novelIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "novelID")
	novelID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || novelID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNovelID, raw)
	}
	return novelID, nil
}

// pageFromRequest reads the skip and limit query parameters.
func pageFromRequest(r *http.Request) (skip, limit uint64, err error) {
	skip, limit = defaultSkip, defaultLimit
	query := r.URL.Query()

	if raw := query.Get("skip"); raw != "" {
		if skip, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: skip=%q", ErrInvalidPageQuery, raw)
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: limit=%q", ErrInvalidPageQuery, raw)
		}
	}

	return skip, limit, nil
}

func userFromRequest(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrUserNotInContext
	}
	return user, nil
}
