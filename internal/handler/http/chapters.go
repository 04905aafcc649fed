package http

import (
	"net/http"

	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
)

func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	chapters, err := h.services.NovelService.ListChapters(r.Context(), novelID)
	if err != nil {
		writeError(w, r, err, "chapter listing failed")
		return
	}

	utils.WriteJSON(w, chapters, http.StatusOK)
}

func (h *Handler) createChapter(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "chapter creation without user")
		return
	}

	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	var input models.ChapterInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "chapter body rejected")
		return
	}

	chapter, err := h.services.NovelService.CreateChapter(r.Context(), novelID, input, user)
	if err != nil {
		writeError(w, r, err, "chapter creation failed")
		return
	}

	utils.WriteJSON(w, chapter, http.StatusOK)
}
