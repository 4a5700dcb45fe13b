package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Agent is a sales agent that leads get assigned to.
type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Factory
func NewAgent(name, email string) (*Agent, error) {
	agent := &Agent{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now(),
	}

	if err := agent.Validate(); err != nil {
		return nil, err
	}

	return agent, nil
}

func (a *Agent) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
