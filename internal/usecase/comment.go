package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

// CommentUseCase resolves both sides of a comment (lead and author)
// before anything is written, so a failed reference check never leaves
// a dangling comment behind.
type CommentUseCase struct {
	CommentRepo CommentRepositoryInterface
	LeadRepo    LeadRepositoryInterface
	AgentRepo   AgentRepositoryInterface
}

func NewCommentUseCase(commentRepo CommentRepositoryInterface, leadRepo LeadRepositoryInterface, agentRepo AgentRepositoryInterface) *CommentUseCase {
	return &CommentUseCase{
		CommentRepo: commentRepo,
		LeadRepo:    leadRepo,
		AgentRepo:   agentRepo,
	}
}

// List returns comments, newest first, optionally narrowed to one lead,
// with lead and author projected for display.
func (uc *CommentUseCase) List(ctx context.Context, leadID string) ([]*CommentOutput, error) {
	comments, err := uc.CommentRepo.FindAll(ctx, leadID)
	if err != nil {
		return nil, errStore("list comments", err)
	}

	outputs := make([]*CommentOutput, 0, len(comments))
	agents := map[string]*entity.Agent{}
	leads := map[string]*entity.Lead{}

	for _, comment := range comments {
		agent, ok := agents[comment.Author]
		if !ok {
			agent, err = uc.AgentRepo.FindByID(ctx, comment.Author)
			if err != nil && !errors.Is(err, entity.ErrNotFound) {
				return nil, errStore("resolve comment author", err)
			}
			agents[comment.Author] = agent
		}

		lead, ok := leads[comment.Lead]
		if !ok {
			lead, err = uc.LeadRepo.FindByID(ctx, comment.Lead)
			if err != nil && !errors.Is(err, entity.ErrNotFound) {
				return nil, errStore("resolve comment lead", err)
			}
			leads[comment.Lead] = lead
		}

		out := &CommentOutput{
			ID:          comment.ID,
			CommentText: comment.CommentText,
			CreatedAt:   comment.CreatedAt,
			Lead:        LeadRef{ID: comment.Lead},
			Author:      AgentRef{ID: comment.Author, Name: unknownAgentName},
		}
		if lead != nil {
			out.Lead.Name = lead.Name
		}
		if agent != nil {
			out.Author = AgentRef{ID: agent.ID, Name: agent.Name, Email: agent.Email}
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

func (uc *CommentUseCase) Create(ctx context.Context, input CreateCommentInput) (*entity.Comment, error) {
	if input.LeadID == "" {
		return nil, errMissingField("leadId")
	}
	if input.Author == "" {
		return nil, errMissingField("author")
	}
	if strings.TrimSpace(input.CommentText) == "" {
		return nil, errMissingField("commentText")
	}

	if _, err := uc.LeadRepo.FindByID(ctx, input.LeadID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errInvalidReference("lead", input.LeadID)
		}
		return nil, errStore("resolve lead", err)
	}
	if _, err := uc.AgentRepo.FindByID(ctx, input.Author); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errInvalidReference("author", input.Author)
		}
		return nil, errStore("resolve author", err)
	}

	comment, err := entity.NewComment(input.LeadID, input.Author, input.CommentText)
	if err != nil {
		return nil, errInvalidValue("comment", err.Error())
	}

	if err := uc.CommentRepo.Create(ctx, comment); err != nil {
		return nil, errStore("create comment", err)
	}

	return comment, nil
}

// UpdateText replaces the comment body. Nothing else on a comment is
// mutable after creation.
func (uc *CommentUseCase) UpdateText(ctx context.Context, id, text string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errMissingField("commentText")
	}

	comment, err := uc.CommentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("comment", id)
		}
		return nil, errStore("get comment", err)
	}

	comment.CommentText = strings.TrimSpace(text)
	if err := uc.CommentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errNotFound("comment", id)
		}
		return nil, errStore("update comment", err)
	}

	return comment, nil
}

func (uc *CommentUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.CommentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return errNotFound("comment", id)
		}
		return errStore("delete comment", err)
	}
	return nil
}
