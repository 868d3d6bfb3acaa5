package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LabsDAO/data-gamify-network/internal/logging"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

// Service computes points for successful uploads and records them.
// A nil repository means no backend is configured; tracking then degrades
// to point computation only.
type Service struct {
	uploads Repository
	logger  logging.Logger
}

func NewService(uploads Repository, logger logging.Logger) *Service {
	return &Service{uploads: uploads, logger: logger}
}

// Track scores one successful upload, persists it, and hands the score to
// pointsCallback. Persistence is best effort: on failure (or with no backend
// configured) the callback still runs with the computed score and Track
// returns a nil record.
func (s *Service) Track(ctx context.Context, userID, fileName string, fileSize int64, fileType string,
	provider storage.Provider, uploadURL string, pointsCallback func(points int)) *UploadRecord {

	points := CalculatePoints(fileName, fileSize, fileType)

	defer func() {
		if pointsCallback != nil {
			pointsCallback(points)
		}
	}()

	if s.uploads == nil {
		s.logger.Warn(ctx, "uploads backend not configured, record not stored", "file", fileName)
		return nil
	}

	record := &UploadRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		FileSize:      fileSize,
		FileType:      fileType,
		Provider:      provider,
		UploadURL:     uploadURL,
		PointsAwarded: points,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.uploads.Insert(ctx, record); err != nil {
		s.logger.Error(ctx, "failed to store upload record", "file", fileName, "err", err)
		return nil
	}

	return record
}

// History returns the user's uploads, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*UploadRecord, error) {
	if s.uploads == nil {
		return nil, nil
	}
	return s.uploads.SelectByUser(ctx, userID)
}

// TotalPoints returns the user's cumulative awarded points.
func (s *Service) TotalPoints(ctx context.Context, userID string) (int64, error) {
	if s.uploads == nil {
		return 0, nil
	}
	return s.uploads.SumPoints(ctx, userID)
}
