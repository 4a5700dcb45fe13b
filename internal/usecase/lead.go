package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anvayahq/anvaya-crm/internal/entity"
	"github.com/anvayahq/anvaya-crm/internal/infra/queue"
)

// LeadUseCase validates lead mutations against the rest of the model.
// The salesAgent reference is resolved at creation time and re-resolved
// on update only when the reference itself changes.
type LeadUseCase struct {
	LeadRepo  LeadRepositoryInterface
	AgentRepo AgentRepositoryInterface
	Queue     QueueProducerInterface

	// Now is swapped out in tests to pin the close timestamp.
	Now func() time.Time
}

func NewLeadUseCase(leadRepo LeadRepositoryInterface, agentRepo AgentRepositoryInterface, producer QueueProducerInterface) *LeadUseCase {
	return &LeadUseCase{
		LeadRepo:  leadRepo,
		AgentRepo: agentRepo,
		Queue:     producer,
		Now:       time.Now,
	}
}

func (uc *LeadUseCase) List(ctx context.Context, filter LeadListFilter) ([]*LeadOutput, error) {
	leads, err := uc.LeadRepo.FindAll(ctx, filter.Status, filter.SalesAgent)
	if err != nil {
		return nil, errStore("list leads", err)
	}

	outputs := make([]*LeadOutput, 0, len(leads))
	resolved := map[string]*entity.Agent{}

	for _, lead := range leads {
		agent, ok := resolved[lead.SalesAgent]
		if !ok {
			agent, err = uc.AgentRepo.FindByID(ctx, lead.SalesAgent)
			if err != nil && !errors.Is(err, entity.ErrNotFound) {
				return nil, errStore("resolve sales agent", err)
			}
			resolved[lead.SalesAgent] = agent
		}
		outputs = append(outputs, leadOutput(lead, agent))
	}

	return outputs, nil
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (*LeadOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("lead", id)
		}
		return nil, errStore("get lead", err)
	}

	agent, err := uc.AgentRepo.FindByID(ctx, lead.SalesAgent)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, errStore("resolve sales agent", err)
	}

	return leadOutput(lead, agent), nil
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errMissingField("name")
	}
	if strings.TrimSpace(input.Source) == "" {
		return nil, errMissingField("source")
	}
	if input.SalesAgent == "" {
		return nil, errMissingField("salesAgent")
	}
	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		return nil, errInvalidValue("status", "must be one of New, Contacted, Qualified, Proposal Sent, Closed")
	}
	if input.Priority != "" && !entity.IsValidLeadPriority(input.Priority) {
		return nil, errInvalidValue("priority", "must be one of High, Medium, Low")
	}

	if _, err := uc.AgentRepo.FindByID(ctx, input.SalesAgent); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errInvalidReference("salesAgent", input.SalesAgent)
		}
		return nil, errStore("resolve sales agent", err)
	}

	lead, err := entity.NewLead(input.Name, input.Source, input.SalesAgent, input.Status)
	if err != nil {
		return nil, errInvalidValue("lead", err.Error())
	}
	lead.Tags = input.Tags
	lead.TimeToClose = input.TimeToClose
	lead.Priority = input.Priority
	if lead.IsClosed() {
		lead.Close(uc.Now())
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, errStore("create lead", err)
	}

	return lead, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("lead", id)
		}
		return nil, errStore("get lead", err)
	}
	prior := *lead

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, errMissingField("name")
		}
		lead.Name = strings.TrimSpace(*input.Name)
	}
	if input.Source != nil {
		if strings.TrimSpace(*input.Source) == "" {
			return nil, errMissingField("source")
		}
		lead.Source = strings.TrimSpace(*input.Source)
	}

	// Reference re-resolution only when the reference field changes.
	if input.SalesAgent != nil && *input.SalesAgent != lead.SalesAgent {
		if *input.SalesAgent == "" {
			return nil, errMissingField("salesAgent")
		}
		if _, err := uc.AgentRepo.FindByID(ctx, *input.SalesAgent); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errInvalidReference("salesAgent", *input.SalesAgent)
			}
			return nil, errStore("resolve sales agent", err)
		}
		lead.SalesAgent = *input.SalesAgent
	}

	if input.Tags != nil {
		lead.Tags = *input.Tags
	}
	if input.TimeToClose != nil {
		lead.TimeToClose = input.TimeToClose
	}
	if input.Priority != nil {
		if *input.Priority != "" && !entity.IsValidLeadPriority(*input.Priority) {
			return nil, errInvalidValue("priority", "must be one of High, Medium, Low")
		}
		lead.Priority = *input.Priority
	}

	closing := false
	if input.Status != nil && *input.Status != lead.Status {
		if !entity.IsValidLeadStatus(*input.Status) {
			return nil, errInvalidValue("status", "must be one of New, Contacted, Qualified, Proposal Sent, Closed")
		}
		switch {
		case *input.Status == entity.LeadStatusClosed:
			lead.Close(uc.Now())
			closing = true
		case lead.IsClosed():
			lead.Reopen(*input.Status)
		default:
			lead.Status = *input.Status
		}
	}
	lead.UpdatedAt = uc.Now()

	if !closing {
		if err := uc.LeadRepo.Update(ctx, lead); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, errNotFound("lead", id)
			}
			return nil, errStore("update lead", err)
		}
		return lead, nil
	}

	// A close transition persists the lead and announces it in one
	// unit: if the event cannot be published the update is compensated
	// so the pipeline and the queue never disagree.
	txn := NewTransaction()
	txn.AddOperation("update_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Update(ctx, lead)
	})
	txn.AddCompensation("restore_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Update(ctx, &prior)
	})
	txn.AddOperation("publish_lead_closed", func(ctx context.Context) error {
		return uc.Queue.PublishLeadClosed(ctx, uc.closedPayload(ctx, lead))
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "CLOSE_LEAD_FAILED",
			Message: "failed to close lead: " + err.Error(),
		}
	}

	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.LeadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return errNotFound("lead", id)
		}
		return errStore("delete lead", err)
	}
	return nil
}

func (uc *LeadUseCase) closedPayload(ctx context.Context, lead *entity.Lead) queue.LeadClosedPayload {
	payload := queue.LeadClosedPayload{
		LeadID:    lead.ID,
		LeadName:  lead.Name,
		AgentID:   lead.SalesAgent,
		AgentName: unknownAgentName,
	}
	if lead.ClosedAt != nil {
		payload.ClosedAt = *lead.ClosedAt
	}

	if agent, err := uc.AgentRepo.FindByID(ctx, lead.SalesAgent); err == nil {
		payload.AgentName = agent.Name
		payload.AgentEmail = agent.Email
	}

	return payload
}
