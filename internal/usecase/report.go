package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

// unknownAgentName is the display fallback when a referenced agent no
// longer resolves. Agent deletion is blocked while leads reference it,
// but a stale id must degrade gracefully rather than fail the report.
const unknownAgentName = "Unknown"

// recentWindow is the lookback of the recently-closed report.
const recentWindow = 7 * 24 * time.Hour

// ReportUseCase computes the three read-only aggregate views over the
// lead collection. It performs no writes.
type ReportUseCase struct {
	LeadRepo  LeadRepositoryInterface
	AgentRepo AgentRepositoryInterface

	// Now is swapped out in tests to pin the reporting window.
	Now func() time.Time
}

func NewReportUseCase(leadRepo LeadRepositoryInterface, agentRepo AgentRepositoryInterface) *ReportUseCase {
	return &ReportUseCase{
		LeadRepo:  leadRepo,
		AgentRepo: agentRepo,
		Now:       time.Now,
	}
}

// RecentlyClosed returns leads closed within [now-7d, now), newest
// creation first, with the owning agent's name attached. A lead whose
// ClosedAt was never stamped cannot fall inside the window and is
// skipped.
func (uc *ReportUseCase) RecentlyClosed(ctx context.Context) ([]*ClosedLeadOutput, error) {
	leads, err := uc.LeadRepo.FindByStatus(ctx, entity.LeadStatusClosed)
	if err != nil {
		return nil, errStore("list closed leads", err)
	}

	now := uc.Now()
	weekAgo := now.Add(-recentWindow)

	names := map[string]string{}
	outputs := make([]*ClosedLeadOutput, 0, len(leads))

	for _, lead := range leads {
		if lead.ClosedAt == nil {
			continue
		}
		if lead.ClosedAt.Before(weekAgo) || !lead.ClosedAt.Before(now) {
			continue
		}

		name, err := uc.agentName(ctx, names, lead.SalesAgent)
		if err != nil {
			return nil, err
		}

		outputs = append(outputs, &ClosedLeadOutput{
			ID:         lead.ID,
			Name:       lead.Name,
			SalesAgent: name,
			ClosedAt:   lead.ClosedAt,
			CreatedAt:  lead.CreatedAt,
		})
	}

	return outputs, nil
}

// Pipeline is the backlog scalar: how many leads are not yet Closed.
func (uc *ReportUseCase) Pipeline(ctx context.Context) (*PipelineOutput, error) {
	count, err := uc.LeadRepo.CountByStatusNot(ctx, entity.LeadStatusClosed)
	if err != nil {
		return nil, errStore("count pipeline leads", err)
	}
	return &PipelineOutput{TotalLeadsInPipeline: count}, nil
}

// ClosedByAgent groups closed leads by owning agent and counts each
// group, then resolves every group key to a display name. Resolution is
// one lookup per distinct agent; at this collection size that beats
// maintaining a joined index.
func (uc *ReportUseCase) ClosedByAgent(ctx context.Context) ([]*ClosedByAgentRow, error) {
	leads, err := uc.LeadRepo.FindByStatus(ctx, entity.LeadStatusClosed)
	if err != nil {
		return nil, errStore("list closed leads", err)
	}

	counts := map[string]int{}
	for _, lead := range leads {
		counts[lead.SalesAgent]++
	}

	// Stable output order regardless of map iteration.
	agentIDs := make([]string, 0, len(counts))
	for id := range counts {
		agentIDs = append(agentIDs, id)
	}
	sort.Strings(agentIDs)

	names := map[string]string{}
	rows := make([]*ClosedByAgentRow, 0, len(counts))
	for _, id := range agentIDs {
		name, err := uc.agentName(ctx, names, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, &ClosedByAgentRow{
			SalesAgent:       name,
			ClosedLeadsCount: counts[id],
		})
	}

	return rows, nil
}

func (uc *ReportUseCase) agentName(ctx context.Context, cache map[string]string, agentID string) (string, error) {
	if name, ok := cache[agentID]; ok {
		return name, nil
	}

	agent, err := uc.AgentRepo.FindByID(ctx, agentID)
	switch {
	case err == nil:
		cache[agentID] = agent.Name
	case errors.Is(err, entity.ErrNotFound):
		cache[agentID] = unknownAgentName
	default:
		return "", errStore("resolve agent name", err)
	}

	return cache[agentID], nil
}
