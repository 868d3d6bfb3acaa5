// Package awss3 implements the AWS S3 provider: an orchestrator that walks
// an ordered list of delivery strategies until one succeeds.
package awss3

import (
	"context"
	"fmt"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/common"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
	"github.com/LabsDAO/data-gamify-network/internal/storage/progress"
	"github.com/LabsDAO/data-gamify-network/internal/storage/validation"
)

// Uploader attempts delivery through each strategy in priority order:
// SDK put, manual signed put, presigned-URL put. Individual failures are
// logged and swallowed; only exhausting the whole list surfaces a failure.
type Uploader struct {
	creds      credentials.AWSCredentials
	logger     logging.Logger
	strategies []strategy
}

// NewUploader builds the orchestrator with the standard strategy order.
func NewUploader(creds credentials.AWSCredentials, logger logging.Logger) *Uploader {
	return &Uploader{
		creds:      creds,
		logger:     logger.With("provider", "AWS"),
		strategies: []strategy{sdkPut{}, signedPut{}, presignedPut{}},
	}
}

// Upload pushes content under {path}/{epochMillis}-{uuid8}-{sanitizedName}.
// Preconditions: the file passed validation and the credentials resolve to
// a complete set. All errors are folded into the result.
func (u *Uploader) Upload(ctx context.Context, file *validation.FileMeta, content []byte, path string, rep progress.Reporter) storage.UploadResult {
	if rep == nil {
		rep = progress.Nop{}
	}

	if err := u.creds.Validate(); err != nil {
		return storage.Failed(err)
	}

	key := storage.ObjectKey(path, file.Name)
	rep.Start()

	var lastName string
	var lastErr error

	for _, s := range u.strategies {
		url, err := s.attempt(ctx, u.creds, key, content, file.MIME)
		if err == nil {
			rep.Succeed()
			u.logger.Info(ctx, "upload complete", "strategy", s.name(), "key", key)
			return storage.Succeeded(url)
		}
		u.logger.Warn(ctx, "upload strategy failed", "strategy", s.name(), "key", key, "err", err)
		lastName, lastErr = s.name(), err
	}

	rep.Fail()
	return storage.Failed(fmt.Errorf("%w: %s: %v (likely a CORS restriction or invalid credentials)",
		common.ErrAllStrategiesFailed, lastName, lastErr))
}
