package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a free-form classification label. Leads reference tags by id;
// nothing references a tag strongly enough to block its deletion.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTag(name string) (*Tag, error) {
	tag := &Tag{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

func (t *Tag) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
