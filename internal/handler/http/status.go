package http

import (
	"net/http"

	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
)

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "status update without user")
		return
	}

	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	var input models.StatusInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "status body rejected")
		return
	}

	status, err := h.services.StatusService.SetStatus(r.Context(), user.UserID, novelID, input.Status)
	if err != nil {
		writeError(w, r, err, "status update failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "status lookup without user")
		return
	}

	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	status, err := h.services.StatusService.GetStatus(r.Context(), user.UserID, novelID)
	if err != nil {
		writeError(w, r, err, "status lookup failed")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) listStatuses(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "status listing without user")
		return
	}

	statuses, err := h.services.StatusService.ListStatuses(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err, "status listing failed")
		return
	}

	utils.WriteJSON(w, statuses, http.StatusOK)
}
