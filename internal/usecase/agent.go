package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

// AgentUseCase gates every agent mutation with the cross-entity checks
// the store itself does not enforce: email uniqueness on create/update
// and the no-referencing-lead guard on delete.
type AgentUseCase struct {
	AgentRepo AgentRepositoryInterface
	LeadRepo  LeadRepositoryInterface
}

func NewAgentUseCase(agentRepo AgentRepositoryInterface, leadRepo LeadRepositoryInterface) *AgentUseCase {
	return &AgentUseCase{
		AgentRepo: agentRepo,
		LeadRepo:  leadRepo,
	}
}

func (uc *AgentUseCase) List(ctx context.Context) ([]*entity.Agent, error) {
	agents, err := uc.AgentRepo.FindAll(ctx)
	if err != nil {
		return nil, errStore("list agents", err)
	}
	return agents, nil
}

func (uc *AgentUseCase) Get(ctx context.Context, id string) (*entity.Agent, error) {
	agent, err := uc.AgentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("agent", id)
		}
		return nil, errStore("get agent", err)
	}
	return agent, nil
}

func (uc *AgentUseCase) Create(ctx context.Context, input CreateAgentInput) (*entity.Agent, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errMissingField("name")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, errMissingField("email")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return nil, errInvalidValue("email", "is not a valid address")
	}

	if err := uc.checkEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	agent, err := entity.NewAgent(input.Name, input.Email)
	if err != nil {
		return nil, errInvalidValue("agent", err.Error())
	}

	if err := uc.AgentRepo.Create(ctx, agent); err != nil {
		// The unique index backstops the pre-write check against a
		// concurrent create with the same email.
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, errConflict("agent with this email already exists")
		}
		return nil, errStore("create agent", err)
	}

	return agent, nil
}

func (uc *AgentUseCase) Update(ctx context.Context, id string, input UpdateAgentInput) (*entity.Agent, error) {
	agent, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, errMissingField("name")
		}
		agent.Name = strings.TrimSpace(*input.Name)
	}

	if input.Email != nil && strings.TrimSpace(*input.Email) != agent.Email {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, errMissingField("email")
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, errInvalidValue("email", "is not a valid address")
		}
		if err := uc.checkEmailFree(ctx, email); err != nil {
			return nil, err
		}
		agent.Email = email
	}

	if err := uc.AgentRepo.Update(ctx, agent); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, errConflict("agent with this email already exists")
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("agent", id)
		}
		return nil, errStore("update agent", err)
	}

	return agent, nil
}

// Delete refuses to remove an agent while any lead still references it.
// The check-then-delete pair is not atomic against a concurrent lead
// creation; the leads table keeps no foreign key on sales_agent.
func (uc *AgentUseCase) Delete(ctx context.Context, id string) error {
	referencing, err := uc.LeadRepo.CountBySalesAgent(ctx, id)
	if err != nil {
		return errStore("count referencing leads", err)
	}
	if referencing > 0 {
		return errConflict("cannot delete agent assigned to leads")
	}

	if err := uc.AgentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return errNotFound("agent", id)
		}
		return errStore("delete agent", err)
	}

	return nil
}

func (uc *AgentUseCase) checkEmailFree(ctx context.Context, email string) error {
	_, err := uc.AgentRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err == nil {
		return errConflict("agent with this email already exists")
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return errStore("check agent email", err)
	}
	return nil
}
