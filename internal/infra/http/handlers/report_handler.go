package handlers

import (
	"net/http"

	"github.com/anvayahq/anvaya-crm/internal/infra/http/middleware"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type ReportHandler struct {
	UC *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{UC: uc}
}

// HandleLastWeek serves GET /report/last-week: leads closed in the last
// seven days with their agent names.
func (h *ReportHandler) HandleLastWeek(w http.ResponseWriter, r *http.Request) {
	middleware.RecordReportQuery("last-week")

	leads, err := h.UC.RecentlyClosed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// HandlePipeline serves GET /report/pipeline: the backlog count.
func (h *ReportHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	middleware.RecordReportQuery("pipeline")

	out, err := h.UC.Pipeline(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleClosedByAgent serves GET /report/closed-by-agent: closed-lead
// counts grouped by agent.
func (h *ReportHandler) HandleClosedByAgent(w http.ResponseWriter, r *http.Request) {
	middleware.RecordReportQuery("closed-by-agent")

	rows, err := h.UC.ClosedByAgent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
