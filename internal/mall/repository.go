package mall

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists mall metadata.
type Repository interface {
	Create(ctx context.Context, mall Mall) error
	List(ctx context.Context) ([]Mall, error)
}

// PostgresRepository stores malls in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a mall record.
func (r *PostgresRepository) Create(ctx context.Context, mall Mall) error {
	mallID, err := uuid.Parse(mall.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO malls (id, name, address, created_at)
        VALUES ($1, $2, $3, $4)`, mallID, mall.Name, mall.Address, mall.CreatedAt.UTC())
	return err
}

// List returns all malls ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]Mall, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address, created_at FROM malls ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var malls []Mall
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			m         Mall
		)
		if err := rows.Scan(&id, &m.Name, &m.Address, &createdAt); err != nil {
			return nil, err
		}
		m.ID = id.String()
		m.CreatedAt = createdAt.UTC()
		malls = append(malls, m)
	}
	return malls, rows.Err()
}
