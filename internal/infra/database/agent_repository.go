package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

type AgentRepository struct {
	DB *sql.DB
}

func NewAgentRepository(db *sql.DB) *AgentRepository {
	return &AgentRepository{DB: db}
}

func (r *AgentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	query := `
		INSERT INTO sales_agents (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		agent.ID,
		agent.Name,
		agent.Email,
		agent.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*entity.Agent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents WHERE id = $1`

	agent := &entity.Agent{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return agent, nil
}

func (r *AgentRepository) FindByEmail(ctx context.Context, email string) (*entity.Agent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents WHERE email = $1`

	agent := &entity.Agent{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return agent, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]*entity.Agent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []*entity.Agent{}
	for rows.Next() {
		agent := &entity.Agent{}
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	return agents, rows.Err()
}

func (r *AgentRepository) Update(ctx context.Context, agent *entity.Agent) error {
	query := `UPDATE sales_agents SET name = $2, email = $3 WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, agent.ID, agent.Name, agent.Email)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *AgentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sales_agents WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}
