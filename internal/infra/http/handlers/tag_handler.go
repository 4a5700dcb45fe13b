package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type TagHandler struct {
	UC *usecase.TagUseCase
}

func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{UC: uc}
}

func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTagInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	tag, err := h.UC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}
