package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.RegisterRequest
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "registration body rejected")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, input)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	input, err := decodeLoginRequest(r)
	if err != nil {
		writeError(w, r, err, "login body rejected")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, input)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "current user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
