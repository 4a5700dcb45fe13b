package usecase

import (
	"time"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

type CreateAgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Update inputs use pointers: nil means "leave unchanged".
type UpdateAgentInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateLeadInput struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	SalesAgent  string   `json:"salesAgent"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	TimeToClose *int     `json:"timeToClose"`
	Priority    string   `json:"priority"`
}

type UpdateLeadInput struct {
	Name        *string   `json:"name"`
	Source      *string   `json:"source"`
	SalesAgent  *string   `json:"salesAgent"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
	TimeToClose *int      `json:"timeToClose"`
	Priority    *string   `json:"priority"`
}

type CreateCommentInput struct {
	LeadID      string `json:"leadId"`
	Author      string `json:"author"`
	CommentText string `json:"commentText"`
}

type CreateTagInput struct {
	Name string `json:"name"`
}

// AgentRef is the display projection of a referenced agent.
type AgentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LeadRef is the display projection of a referenced lead.
type LeadRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeadOutput is a lead with its agent reference resolved for display.
type LeadOutput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	SalesAgent  AgentRef   `json:"salesAgent"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags,omitempty"`
	TimeToClose *int       `json:"timeToClose,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CommentOutput struct {
	ID          string    `json:"id"`
	Lead        LeadRef   `json:"lead"`
	Author      AgentRef  `json:"author"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClosedLeadOutput is a row of the recently-closed report.
type ClosedLeadOutput struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SalesAgent string     `json:"salesAgent"`
	ClosedAt   *time.Time `json:"closedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type PipelineOutput struct {
	TotalLeadsInPipeline int `json:"totalLeadsInPipeline"`
}

// ClosedByAgentRow is one group of the closed-by-agent report.
type ClosedByAgentRow struct {
	SalesAgent       string `json:"salesAgent"`
	ClosedLeadsCount int    `json:"closedLeadsCount"`
}

func leadOutput(lead *entity.Lead, agent *entity.Agent) *LeadOutput {
	out := &LeadOutput{
		ID:          lead.ID,
		Name:        lead.Name,
		Source:      lead.Source,
		Status:      lead.Status,
		Tags:        lead.Tags,
		TimeToClose: lead.TimeToClose,
		Priority:    lead.Priority,
		ClosedAt:    lead.ClosedAt,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}

	if agent != nil {
		out.SalesAgent = AgentRef{ID: agent.ID, Name: agent.Name, Email: agent.Email}
	} else {
		out.SalesAgent = AgentRef{ID: lead.SalesAgent, Name: unknownAgentName}
	}

	return out
}
