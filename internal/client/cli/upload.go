package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
	"github.com/LabsDAO/data-gamify-network/internal/storage/awss3"
	"github.com/LabsDAO/data-gamify-network/internal/storage/oort"
	"github.com/LabsDAO/data-gamify-network/internal/storage/progress"
	"github.com/LabsDAO/data-gamify-network/internal/storage/validation"
)

// Seams for the provider uploaders, stubbed in tests.
var (
	awsUpload = func(ctx context.Context, creds credentials.AWSCredentials, logger logging.Logger,
		file *validation.FileMeta, content []byte, path string, rep progress.Reporter) storage.UploadResult {
		return awss3.NewUploader(creds, logger).Upload(ctx, file, content, path, rep)
	}

	oortUpload = func(ctx context.Context, creds credentials.OORTCredentials, logger logging.Logger,
		file *validation.FileMeta, content []byte, path string, rep progress.Reporter) storage.UploadResult {
		return oort.NewUploader(creds, logger).Upload(ctx, file, content, path, rep)
	}
)

var errUnknownProvider = errors.New("unknown provider")

func init() {
	// not every system ships a mime.types table covering these
	_ = mime.AddExtensionType(".csv", "text/csv")
	_ = mime.AddExtensionType(".xls", "application/vnd.ms-excel")
	_ = mime.AddExtensionType(".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func parseProvider(args []string, fallback storage.Provider) (storage.Provider, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	switch strings.ToLower(args[0]) {
	case "aws":
		return storage.ProviderAWS, nil
	case "oort":
		return storage.ProviderOORT, nil
	}
	return "", fmt.Errorf("%w: %s", errUnknownProvider, args[0])
}

// detectMIME resolves the declared content type from the file extension,
// falling back to content sniffing. Parameters like charset are dropped to
// match the validator's allow-list entries.
func detectMIME(name string, content []byte) string {
	mt := mime.TypeByExtension(filepath.Ext(name))
	if mt == "" {
		mt = http.DetectContentType(content)
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.TrimSpace(mt)
}

// Upload validates the file at args[0] and delivers it to the selected
// provider (default OORT), tracking the result.
func (a *App) Upload(ctx context.Context, args []string) error {
	provider, err := parseProvider(args[1:], storage.ProviderOORT)
	if err != nil {
		a.notifier.Error("%v", err)
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		a.notifier.Error("Cannot read %s: %v", args[0], err)
		return err
	}

	file := &validation.FileMeta{
		Name: filepath.Base(args[0]),
		Size: int64(len(content)),
		MIME: detectMIME(args[0], content),
	}
	if res := validation.Validate(file); !res.Valid {
		a.notifier.Error("%s", res.Error)
		return errors.New(res.Error)
	}

	result := a.deliver(ctx, provider, file, content)

	if !result.Success {
		a.notifier.Error("Upload failed: %v", result.Err)
		return result.Err
	}

	if result.Verified {
		a.notifier.Success("Uploaded %s (verified)", result.URL)
	} else {
		a.notifier.Success("Uploaded %s", result.URL)
	}

	a.tracker.Track(ctx, a.userID, file.Name, file.Size, file.MIME, provider, result.URL, func(points int) {
		a.notifier.Info("Earned %d points", points)
	})
	return nil
}

// deliver runs the real provider uploader, or the simulated path when the
// provider's mode flag is off.
func (a *App) deliver(ctx context.Context, provider storage.Provider,
	file *validation.FileMeta, content []byte) storage.UploadResult {

	rep := progress.NewEstimator(progress.NewTracker(a.renderProgress))

	if !a.modes.UseReal(ctx, provider) {
		rep.Start()
		result := a.simulated(ctx, provider, file)
		rep.Succeed()
		return result
	}

	switch provider {
	case storage.ProviderAWS:
		return awsUpload(ctx, a.awsCreds.Get(ctx), a.logger, file, content, a.config.UploadPath, rep)
	default:
		return oortUpload(ctx, a.oortCreds.Get(ctx), a.logger, file, content, a.config.UploadPath, rep)
	}
}

// simulated produces a deterministic fake URL without any network call.
// The upload is still validated and tracked.
func (a *App) simulated(ctx context.Context, provider storage.Provider, file *validation.FileMeta) storage.UploadResult {
	var bucket string
	if provider == storage.ProviderAWS {
		bucket = a.awsCreds.Get(ctx).Bucket
	} else {
		bucket = a.oortCreds.Get(ctx).Bucket
	}
	key := storage.SimpleObjectKey(a.config.UploadPath, storage.SanitizeName(file.Name))
	url := fmt.Sprintf("https://simulated.%s.local/%s/%s", strings.ToLower(string(provider)), bucket, key)
	a.logger.Info(ctx, "simulated upload", "provider", provider, "url", url)
	return storage.Succeeded(url)
}

func (a *App) renderProgress(s progress.Snapshot) {
	switch s.State {
	case progress.StateSucceeded, progress.StateFailed:
		fmt.Fprintf(a.out, "\r%-12s %3d%%\n", s.State, s.Percent)
	default:
		fmt.Fprintf(a.out, "\r%-12s %3d%%", s.State, s.Percent)
	}
}
