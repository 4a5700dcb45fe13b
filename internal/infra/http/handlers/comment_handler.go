package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type CommentHandler struct {
	UC *usecase.CommentUseCase
}

func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{UC: uc}
}

// HandleList serves GET /comments, optionally filtered by ?leadId=.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.UC.List(r.Context(), r.URL.Query().Get("leadId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	comment, err := h.UC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// HandleUpdate accepts only a replacement commentText; nothing else on
// a comment is mutable.
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	var input struct {
		CommentText string `json:"commentText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	comment, err := h.UC.UpdateText(r.Context(), id, input.CommentText)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	if err := h.UC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Comment deleted"})
}
