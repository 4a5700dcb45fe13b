package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, lead_id, author, comment_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		comment.ID,
		comment.Lead,
		comment.Author,
		comment.CommentText,
		comment.CreatedAt,
	)

	return err
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	query := `SELECT id, lead_id, author, comment_text, created_at FROM comments WHERE id = $1`

	comment := &entity.Comment{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.Lead,
		&comment.Author,
		&comment.CommentText,
		&comment.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// FindAll returns comments newest first; an empty leadID matches all
// leads.
func (r *CommentRepository) FindAll(ctx context.Context, leadID string) ([]*entity.Comment, error) {
	query := `SELECT id, lead_id, author, comment_text, created_at FROM comments`
	args := []any{}
	if leadID != "" {
		query += ` WHERE lead_id = $1`
		args = append(args, leadID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*entity.Comment{}
	for rows.Next() {
		comment := &entity.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.Lead,
			&comment.Author,
			&comment.CommentText,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *CommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE comments SET comment_text = $2 WHERE id = $1`,
		comment.ID, comment.CommentText,
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

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
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
