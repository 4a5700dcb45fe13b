package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, source, sales_agent, status, tags, time_to_close, priority, closed_at, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, source, sales_agent, status, tags, time_to_close, priority, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Source,
		lead.SalesAgent,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		nullString(lead.Priority),
		lead.ClosedAt,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// FindAll returns leads newest first. Empty status or salesAgent
// matches everything.
func (r *LeadRepository) FindAll(ctx context.Context, status, salesAgent string) ([]*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads`, leadColumns)

	args := []any{}
	where := ""
	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if salesAgent != "" {
		args = append(args, salesAgent)
		if where == "" {
			where = fmt.Sprintf(" WHERE sales_agent = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND sales_agent = $%d", len(args))
		}
	}

	query += where + ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeads(rows)
}

func (r *LeadRepository) FindByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	return r.FindAll(ctx, status, "")
}

func (r *LeadRepository) CountBySalesAgent(ctx context.Context, agentID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE sales_agent = $1`, agentID,
	).Scan(&count)
	return count, err
}

func (r *LeadRepository) CountByStatusNot(ctx context.Context, status string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE status <> $1`, status,
	).Scan(&count)
	return count, err
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, source = $3, sales_agent = $4, status = $5, tags = $6,
		    time_to_close = $7, priority = $8, closed_at = $9, updated_at = $10
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Source,
		lead.SalesAgent,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		nullString(lead.Priority),
		lead.ClosedAt,
		lead.UpdatedAt,
	)
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

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	lead := &entity.Lead{}
	var priority sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Source,
		&lead.SalesAgent,
		&lead.Status,
		pq.Array(&lead.Tags),
		&lead.TimeToClose,
		&priority,
		&lead.ClosedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Priority = priority.String
	return lead, nil
}

func collectLeads(rows *sql.Rows) ([]*entity.Lead, error) {
	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
