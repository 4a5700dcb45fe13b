package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anvayahq/anvaya-crm/internal/entity"
	"github.com/anvayahq/anvaya-crm/internal/infra/http/handlers"
	"github.com/anvayahq/anvaya-crm/internal/infra/queue"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

type stubProducer struct{}

func (stubProducer) PublishLeadClosed(ctx context.Context, payload queue.LeadClosedPayload) error {
	return nil
}

func newLeadHandler(leadRepo *MockLeadRepository, agentRepo *MockAgentRepository) *handlers.LeadHandler {
	return handlers.NewLeadHandler(usecase.NewLeadUseCase(leadRepo, agentRepo, stubProducer{}))
}

func TestHandleCreateLeadReturns201(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	agent := &entity.Agent{ID: "agent-1", Name: "Ravi Kumar", Email: "ravi@anvaya.io"}
	agentRepo.On("FindByID", mock.Anything, "agent-1").Return(agent, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(leadRepo, agentRepo)

	body := strings.NewReader(`{"name":"Acme Corp","source":"Website","salesAgent":"agent-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads", body)
	req.RemoteAddr = "10.0.0.1:52000"
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, entity.LeadStatusNew, created.Status)
}

func TestHandleCreateLeadUnknownAgentReturns404(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	agentRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrNotFound)

	handler := newLeadHandler(leadRepo, agentRepo)

	body := strings.NewReader(`{"name":"Acme Corp","source":"Website","salesAgent":"ghost"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads", body)
	req.RemoteAddr = "10.0.0.2:52000"
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	leadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCreateLeadRateLimited(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	agent := &entity.Agent{ID: "agent-1", Name: "Ravi Kumar", Email: "ravi@anvaya.io"}
	agentRepo.On("FindByID", mock.Anything, "agent-1").Return(agent, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(leadRepo, agentRepo)

	var last int
	for i := 0; i < 31; i++ {
		body := strings.NewReader(`{"name":"Acme Corp","source":"Website","salesAgent":"agent-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/leads", body)
		req.RemoteAddr = "10.0.0.3:52000"
		rec := httptest.NewRecorder()
		handler.HandleCreate(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestHandleListLeadsPassesFilter(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	agentRepo := new(MockAgentRepository)

	leadRepo.On("FindAll", mock.Anything, entity.LeadStatusNew, "agent-1").Return([]*entity.Lead{}, nil)

	handler := newLeadHandler(leadRepo, agentRepo)

	req := httptest.NewRequest(http.MethodGet, "/leads?status=New&salesAgent=agent-1", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	leadRepo.AssertCalled(t, "FindAll", mock.Anything, entity.LeadStatusNew, "agent-1")
}

func TestHandleUpdateLeadWithoutIDReturns400(t *testing.T) {
	handler := newLeadHandler(new(MockLeadRepository), new(MockAgentRepository))

	req := httptest.NewRequest(http.MethodPost, "/leads/update", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.HandleUpdate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
