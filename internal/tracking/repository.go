package tracking

import "context"

type Repository interface {
	Insert(ctx context.Context, record *UploadRecord) error
	SelectByUser(ctx context.Context, userID string) ([]*UploadRecord, error)
	SumPoints(ctx context.Context, userID string) (int64, error)
}
