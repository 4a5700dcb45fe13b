package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anvayahq/anvaya-crm/internal/entity"
	"github.com/anvayahq/anvaya-crm/internal/infra/http/handlers"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

func TestHandlePipelineReturnsCount(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("CountByStatusNot", mock.Anything, entity.LeadStatusClosed).Return(7, nil)

	handler := handlers.NewReportHandler(usecase.NewReportUseCase(leadRepo, new(MockAgentRepository)))

	req := httptest.NewRequest(http.MethodGet, "/report/pipeline", nil)
	rec := httptest.NewRecorder()

	handler.HandlePipeline(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.PipelineOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 7, out.TotalLeadsInPipeline)
}

func TestHandleClosedByAgentReturnsRows(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	closedAt := time.Now().Add(-time.Hour)
	leads := []*entity.Lead{
		{ID: "lead-1", Name: "Acme Corp", SalesAgent: "agent-1", Status: entity.LeadStatusClosed, ClosedAt: &closedAt},
		{ID: "lead-2", Name: "Globex", SalesAgent: "agent-1", Status: entity.LeadStatusClosed, ClosedAt: &closedAt},
	}
	agent := &entity.Agent{ID: "agent-1", Name: "Ravi Kumar", Email: "ravi@anvaya.io"}

	leadRepo.On("FindByStatus", mock.Anything, entity.LeadStatusClosed).Return(leads, nil)
	agentRepo.On("FindByID", mock.Anything, "agent-1").Return(agent, nil)

	handler := handlers.NewReportHandler(usecase.NewReportUseCase(leadRepo, agentRepo))

	req := httptest.NewRequest(http.MethodGet, "/report/closed-by-agent", nil)
	rec := httptest.NewRecorder()

	handler.HandleClosedByAgent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []usecase.ClosedByAgentRow
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "Ravi Kumar", rows[0].SalesAgent)
	assert.Equal(t, 2, rows[0].ClosedLeadsCount)
}

func TestHandleLastWeekReturnsClosedLeads(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	closedAt := time.Now().Add(-48 * time.Hour)
	leads := []*entity.Lead{
		{ID: "lead-1", Name: "Acme Corp", SalesAgent: "agent-1", Status: entity.LeadStatusClosed, ClosedAt: &closedAt},
	}
	agent := &entity.Agent{ID: "agent-1", Name: "Ravi Kumar", Email: "ravi@anvaya.io"}

	leadRepo.On("FindByStatus", mock.Anything, entity.LeadStatusClosed).Return(leads, nil)
	agentRepo.On("FindByID", mock.Anything, "agent-1").Return(agent, nil)

	handler := handlers.NewReportHandler(usecase.NewReportUseCase(leadRepo, agentRepo))

	req := httptest.NewRequest(http.MethodGet, "/report/last-week", nil)
	rec := httptest.NewRecorder()

	handler.HandleLastWeek(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []usecase.ClosedLeadOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	assert.Equal(t, "Ravi Kumar", rows[0].SalesAgent)
}
