package oort

import (
	"context"
	"fmt"
	"net/url"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
	"github.com/LabsDAO/data-gamify-network/internal/storage/progress"
	"github.com/LabsDAO/data-gamify-network/internal/storage/sigv4"
	"github.com/LabsDAO/data-gamify-network/internal/storage/validation"
)

// Uploader delivers a file to OORT with a single direct HTTP PUT carrying a
// hand-built SigV4 authorization header, then optionally re-checks the
// object with an unauthenticated HEAD. Verification failure never
// invalidates a successful upload.
type Uploader struct {
	creds  credentials.OORTCredentials
	logger logging.Logger

	// Verify toggles the post-upload accessibility re-check.
	Verify bool
}

// NewUploader builds an Uploader for the given credential set.
func NewUploader(creds credentials.OORTCredentials, logger logging.Logger) *Uploader {
	return &Uploader{
		creds:  creds,
		logger: logger.With("provider", "OORT"),
		Verify: true,
	}
}

// Upload pushes content to {path}/{epochMillis}-{originalName}. The caller
// must have validated the file and, ideally, confirmed bucket access via
// TestConnection; skipping that check risks an opaque failure here.
// Errors are folded into the result, never returned as panics or raw
// rejections.
func (u *Uploader) Upload(ctx context.Context, file *validation.FileMeta, content []byte, path string, rep progress.Reporter) storage.UploadResult {
	if rep == nil {
		rep = progress.Nop{}
	}

	if err := u.creds.Validate(); err != nil {
		return storage.Failed(err)
	}

	key := storage.SimpleObjectKey(path, file.Name)
	rawURL := objectURL(u.creds, key)

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return storage.Failed(fmt.Errorf("invalid object url %q: %w", rawURL, err))
	}

	rep.Start()

	signer := sigv4.New(u.creds.AccessKeyID, u.creds.SecretAccessKey, signingRegion)
	headers := signer.SignPut(parsed, content, map[string]string{
		"Content-Type": file.MIME,
		"x-amz-acl":    "public-read",
	})

	if err := putObjectURL(ctx, rawURL, content, headers); err != nil {
		u.logger.Error(ctx, "direct upload failed", "key", key, "err", err)
		rep.Fail()
		return storage.Failed(err)
	}

	result := storage.Succeeded(rawURL)

	if u.Verify {
		rep.Verifying()
		ok, headErr := headObjectURL(ctx, rawURL)
		result.Verified = headErr == nil && ok
		if !result.Verified {
			u.logger.Warn(ctx, "uploaded object not publicly reachable", "key", key, "err", headErr)
		}
	}

	rep.Succeed()
	u.logger.Info(ctx, "upload complete", "key", key, "verified", result.Verified)
	return result
}
