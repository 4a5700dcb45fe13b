package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead pipeline statuses. "Closed" is terminal and drives reporting.
const (
	LeadStatusNew          = "New"
	LeadStatusContacted    = "Contacted"
	LeadStatusQualified    = "Qualified"
	LeadStatusProposalSent = "Proposal Sent"
	LeadStatusClosed       = "Closed"
)

const (
	LeadPriorityHigh   = "High"
	LeadPriorityMedium = "Medium"
	LeadPriorityLow    = "Low"
)

func IsValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposalSent, LeadStatusClosed:
		return true
	}
	return false
}

func IsValidLeadPriority(priority string) bool {
	switch priority {
	case LeadPriorityHigh, LeadPriorityMedium, LeadPriorityLow:
		return true
	}
	return false
}

// Lead is a sales opportunity owned by exactly one agent. SalesAgent and
// Tags hold ids of other records; they are resolved by lookup, never
// embedded.
type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	SalesAgent  string     `json:"salesAgent"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags,omitempty"`
	TimeToClose *int       `json:"timeToClose,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Factory. Status defaults to New when empty.
func NewLead(name, source, salesAgent, status string) (*Lead, error) {
	if status == "" {
		status = LeadStatusNew
	}

	lead := &Lead{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(name),
		Source:     strings.TrimSpace(source),
		SalesAgent: salesAgent,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Source == "" {
		return errors.New("source is required")
	}
	if l.SalesAgent == "" {
		return errors.New("salesAgent is required")
	}
	if !IsValidLeadStatus(l.Status) {
		return errors.New("status is invalid")
	}
	if l.Priority != "" && !IsValidLeadPriority(l.Priority) {
		return errors.New("priority is invalid")
	}
	return nil
}

func (l *Lead) IsClosed() bool {
	return l.Status == LeadStatusClosed
}

// Close marks the lead as Closed and stamps ClosedAt. An already-set
// ClosedAt is preserved so a repeated Closed update never moves the
// reporting window.
func (l *Lead) Close(at time.Time) {
	l.Status = LeadStatusClosed
	if l.ClosedAt == nil {
		l.ClosedAt = &at
	}
}

// Reopen moves a closed lead back into the pipeline and clears ClosedAt.
func (l *Lead) Reopen(status string) {
	l.Status = status
	l.ClosedAt = nil
}
