// Package tracking records successful uploads in the marketplace backend
// and computes the contribution points each one earns.
package tracking

import (
	"time"

	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

// UploadRecord is one successful upload. Created once, never updated.
type UploadRecord struct {
	ID            string
	UserID        string
	FileName      string
	FileSize      int64
	FileType      string
	Provider      storage.Provider
	UploadURL     string
	PointsAwarded int
	CreatedAt     time.Time
}
