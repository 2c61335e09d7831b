package memories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/dbx"
	"github.com/zaidasim/swadesh/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const memoryColumns = `id, user_id, content, category, created_at, updated_at`

func scanMemory(row *sql.Row) (*models.Memory, error) {
	m := &models.Memory{}
	err := row.Scan(&m.ID, &m.UserID, &m.Content, &m.Category, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select memories: %w", err)
	}
	defer rows.Close()

	var result []*models.Memory
	for rows.Next() {
		var item models.Memory
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Content, &item.Category, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, memory *models.Memory) (*models.Memory, error) {
	query := `
		INSERT INTO memories (id, user_id, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + memoryColumns

	m, err := scanMemory(r.db.QueryRowContext(ctx, query,
		memory.ID, memory.UserID, memory.Content, memory.Category))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories WHERE id = $1`

	m, err := scanMemory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id string, content string) (*models.Memory, error) {
	query := `
		UPDATE memories SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + memoryColumns

	m, err := scanMemory(r.db.QueryRowContext(ctx, query, id, content))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM memories WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
