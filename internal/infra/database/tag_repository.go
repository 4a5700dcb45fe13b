package database

import (
	"context"
	"database/sql"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

type TagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.CreatedAt,
	)
	return err
}

func (r *TagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, created_at FROM tags ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*entity.Tag{}
	for rows.Next() {
		tag := &entity.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
