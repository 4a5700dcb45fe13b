package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is a note left on a lead by an agent. Lead and Author hold ids
// of existing records; both must resolve at creation time.
type Comment struct {
	ID          string    `json:"id"`
	Lead        string    `json:"lead"`
	Author      string    `json:"author"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewComment(leadID, authorID, text string) (*Comment, error) {
	comment := &Comment{
		ID:          uuid.New().String(),
		Lead:        leadID,
		Author:      authorID,
		CommentText: strings.TrimSpace(text),
		CreatedAt:   time.Now(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *Comment) Validate() error {
	if c.Lead == "" {
		return errors.New("lead is required")
	}
	if c.Author == "" {
		return errors.New("author is required")
	}
	if c.CommentText == "" {
		return errors.New("commentText is required")
	}
	return nil
}
