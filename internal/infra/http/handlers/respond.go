package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anvayahq/anvaya-crm/internal/infra/http/middleware"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the core error taxonomy onto status codes. Anything
// that is not a DomainError is an infrastructure failure and stays a 500.
func writeError(w http.ResponseWriter, err error) {
	domainErr, ok := err.(*usecase.DomainError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	middleware.RecordRejectedMutation(domainErr.Code)

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case usecase.CodeMissingField:
		status = http.StatusBadRequest
	case usecase.CodeInvalidReference, usecase.CodeNotFound:
		status = http.StatusNotFound
	case usecase.CodeConflict:
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{Error: domainErr.Message})
}
