package tracking

import (
	"context"
	"fmt"

	"github.com/LabsDAO/data-gamify-network/internal/dbx"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

// PostgresRepository implements upload record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores one upload record. Records are write-once; there is no
// update path.
func (r *PostgresRepository) Insert(ctx context.Context, record *UploadRecord) error {
	query := `
		INSERT INTO uploads (id, user_id, file_name, file_size, file_type, storage_provider, upload_url, points_awarded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	res, err := r.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.FileName, record.FileSize, record.FileType,
		string(record.Provider), record.UploadURL, record.PointsAwarded, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// SelectByUser returns the user's uploads, newest first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*UploadRecord, error) {
	query := ` SELECT id, user_id, file_name, file_size, file_type, storage_provider, upload_url, points_awarded, created_at from uploads
		WHERE user_id=$1 ORDER BY created_at DESC
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select uploads: %w", err)
	}
	defer rows.Close()

	var result []*UploadRecord
	for rows.Next() {
		var item UploadRecord
		var provider string
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.FileName, &item.FileSize, &item.FileType,
			&provider, &item.UploadURL, &item.PointsAwarded, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Provider = storage.Provider(provider)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SumPoints returns the user's cumulative awarded points.
func (r *PostgresRepository) SumPoints(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COALESCE(SUM(points_awarded), 0) from uploads WHERE user_id=$1`
	var total int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}
	return total, nil
}
