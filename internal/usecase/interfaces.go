package usecase

import (
	"context"

	"github.com/anvayahq/anvaya-crm/internal/entity"
	"github.com/anvayahq/anvaya-crm/internal/infra/queue"
)

// Repository contracts for the entity store. Implementations live in
// infra/database; tests substitute testify mocks. Every FindByID returns
// entity.ErrNotFound when the id does not resolve, and every FindAll
// orders by creation time descending.

type AgentRepositoryInterface interface {
	Create(ctx context.Context, agent *entity.Agent) error
	FindByID(ctx context.Context, id string) (*entity.Agent, error)
	FindByEmail(ctx context.Context, email string) (*entity.Agent, error)
	FindAll(ctx context.Context) ([]*entity.Agent, error)
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id string) error
}

// LeadListFilter narrows List. Empty fields match everything.
type LeadListFilter struct {
	Status     string
	SalesAgent string
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context, status, salesAgent string) ([]*entity.Lead, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.Lead, error)
	CountBySalesAgent(ctx context.Context, agentID string) (int, error)
	CountByStatusNot(ctx context.Context, status string) (int, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}

type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id string) (*entity.Comment, error)
	FindAll(ctx context.Context, leadID string) ([]*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id string) error
}

type TagRepositoryInterface interface {
	Create(ctx context.Context, tag *entity.Tag) error
	FindAll(ctx context.Context) ([]*entity.Tag, error)
}

type QueueProducerInterface interface {
	PublishLeadClosed(ctx context.Context, payload queue.LeadClosedPayload) error
}
