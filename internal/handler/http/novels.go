package http

import (
	"net/http"

	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
)

func (h *Handler) listNovels(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pageFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad pagination")
		return
	}

	novels, err := h.services.NovelService.ListNovels(r.Context(), skip, limit)
	if err != nil {
		writeError(w, r, err, "novel listing failed")
		return
	}

	utils.WriteJSON(w, novels, http.StatusOK)
}

func (h *Handler) getNovel(w http.ResponseWriter, r *http.Request) {
	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	novel, err := h.services.NovelService.GetNovel(r.Context(), novelID)
	if err != nil {
		writeError(w, r, err, "novel lookup failed")
		return
	}

	utils.WriteJSON(w, novel, http.StatusOK)
}

func (h *Handler) createNovel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "novel creation without user")
		return
	}

	var input models.NovelInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "novel body rejected")
		return
	}

	novel, err := h.services.NovelService.CreateNovel(r.Context(), input, user)
	if err != nil {
		writeError(w, r, err, "novel creation failed")
		return
	}

	log.Info().Int64("novel_id", novel.ID).Int64("owner_id", novel.OwnerID).Msg("novel created")
	utils.WriteJSON(w, novel, http.StatusOK)
}

func (h *Handler) updateNovel(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "novel update without user")
		return
	}

	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	var input models.NovelInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err, "novel body rejected")
		return
	}

	novel, err := h.services.NovelService.UpdateNovel(r.Context(), novelID, input, user)
	if err != nil {
		writeError(w, r, err, "novel update failed")
		return
	}

	utils.WriteJSON(w, novel, http.StatusOK)
}

func (h *Handler) deleteNovel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err, "novel deletion without user")
		return
	}

	novelID, err := novelIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "bad novel id")
		return
	}

	novel, err := h.services.NovelService.DeleteNovel(r.Context(), novelID, user)
	if err != nil {
		writeError(w, r, err, "novel deletion failed")
		return
	}

	log.Info().Int64("novel_id", novel.ID).Int("chapters", len(novel.Chapters)).Msg("novel deleted")
	utils.WriteJSON(w, novel, http.StatusOK)
}
