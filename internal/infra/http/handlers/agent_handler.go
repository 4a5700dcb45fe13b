package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type AgentHandler struct {
	UC *usecase.AgentUseCase
}

func NewAgentHandler(uc *usecase.AgentUseCase) *AgentHandler {
	return &AgentHandler{UC: uc}
}

// HandleList serves GET /agents: the whole collection, or a single
// record when ?id= is present.
func (h *AgentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		agent, err := h.UC.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, agent)
		return
	}

	agents, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

func (h *AgentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	agent, err := h.UC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	var input usecase.UpdateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	agent, err := h.UC.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, agent)
}

func (h *AgentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id is required"})
		return
	}

	if err := h.UC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Agent deleted successfully"})
}
