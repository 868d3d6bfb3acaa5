package oort

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/common"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
)

// ConnectivityDetails is the step-by-step outcome of one probe.
type ConnectivityDetails struct {
	CredentialsValid bool
	BucketAccessible bool
	WritePermission  bool
	// CORSEnabled is nil when the inference step did not run. The value is a
	// single-fetch heuristic and conflates several failure causes; treat it
	// as a hint, not a diagnosis.
	CORSEnabled      *bool
	AvailableBuckets []string
	ErrorDetails     string
}

// ConnectivityStatus is the terminal result of a probe. A new probe fully
// replaces any prior status; there are no incremental updates.
type ConnectivityStatus struct {
	Tested  bool
	IsValid bool
	Details ConnectivityDetails
	Message string
}

// Prober checks, strictly in order, that the configured credentials can
// list buckets, that the target bucket is reachable, and that a probe
// object can be written. Each remote step is bounded by StepTimeout.
type Prober struct {
	creds  credentials.OORTCredentials
	logger logging.Logger

	// StepTimeout bounds every remote call of the probe.
	StepTimeout time.Duration
}

// NewProber builds a Prober for the given credential set.
func NewProber(creds credentials.OORTCredentials, logger logging.Logger) *Prober {
	return &Prober{
		creds:       creds,
		logger:      logger.With("provider", "OORT"),
		StepTimeout: 10 * time.Second,
	}
}

// TestConnection runs the sequential probe. Each step is gated on the
// previous one succeeding; the first failure terminates the probe with a
// classified, human-readable message.
func (p *Prober) TestConnection(ctx context.Context) ConnectivityStatus {
	details := ConnectivityDetails{}

	if p.creds.AccessKeyID == "" || p.creds.SecretAccessKey == "" {
		return ConnectivityStatus{
			Tested:  true,
			Details: details,
			Message: "OORT credentials are not configured. Enter an access key and secret key first.",
		}
	}

	client, err := newClient(ctx, p.creds)
	if err != nil {
		details.ErrorDetails = err.Error()
		return ConnectivityStatus{
			Tested:  true,
			Details: details,
			Message: fmt.Sprintf("Could not initialize the storage client: %v", err),
		}
	}

	// Step 1: list buckets proves the key pair is valid.
	listCtx, cancel := context.WithTimeout(ctx, p.StepTimeout)
	listed, err := listBuckets(listCtx, client, &s3.ListBucketsInput{})
	cancel()
	if err != nil {
		class := classify(err)
		details.ErrorDetails = err.Error()
		p.logger.Warn(ctx, "bucket listing failed", "err", err)
		return ConnectivityStatus{
			Tested:  true,
			Details: details,
			Message: credentialFailureMessage(class, err),
		}
	}

	details.CredentialsValid = true
	for _, b := range listed.Buckets {
		details.AvailableBuckets = append(details.AvailableBuckets, awssdk.ToString(b.Name))
	}
	p.logger.Info(ctx, "credentials accepted", "buckets", len(details.AvailableBuckets))

	if p.creds.Bucket == "" {
		return ConnectivityStatus{
			Tested:  true,
			IsValid: false,
			Details: details,
			Message: "Credentials are valid but no target bucket is configured.",
		}
	}

	// Step 2: head the target bucket. Not-found and forbidden are reported
	// identically; the caller only learns the bucket is not usable.
	headCtx, cancel := context.WithTimeout(ctx, p.StepTimeout)
	_, err = headBucket(headCtx, client, &s3.HeadBucketInput{Bucket: awssdk.String(p.creds.Bucket)})
	cancel()
	if err != nil {
		details.ErrorDetails = err.Error()
		p.logger.Warn(ctx, "bucket head failed", "bucket", p.creds.Bucket, "err", err)
		hint := ""
		if len(details.AvailableBuckets) > 0 {
			hint = fmt.Sprintf(" Buckets these credentials can access: %s.", strings.Join(details.AvailableBuckets, ", "))
		}
		return ConnectivityStatus{
			Tested:  true,
			Details: details,
			Message: fmt.Sprintf("Bucket %q does not exist or access is denied.%s", p.creds.Bucket, hint),
		}
	}
	details.BucketAccessible = true

	// Step 3: zero-risk write probe.
	probeKey := fmt.Sprintf("test/connectivity-%d.txt", time.Now().UnixMilli())
	putCtx, cancel := context.WithTimeout(ctx, p.StepTimeout)
	_, err = putObject(putCtx, client, &s3.PutObjectInput{
		Bucket:      awssdk.String(p.creds.Bucket),
		Key:         awssdk.String(probeKey),
		Body:        strings.NewReader("connectivity probe"),
		ContentType: awssdk.String("text/plain"),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	cancel()
	if err != nil {
		details.ErrorDetails = err.Error()
		p.logger.Warn(ctx, "write probe failed", "key", probeKey, "err", err)
		return ConnectivityStatus{
			Tested:  true,
			Details: details,
			Message: fmt.Sprintf("Bucket is reachable but writing was refused: %v", err),
		}
	}
	details.WritePermission = true

	// Step 4 (best effort): infer cross-origin readability of the probe
	// object. A failed fetch is recorded, never treated as a probe failure.
	headObjCtx, cancel := context.WithTimeout(ctx, p.StepTimeout)
	reachable, headErr := headObjectURL(headObjCtx, objectURL(p.creds, probeKey))
	cancel()
	cors := headErr == nil && reachable
	details.CORSEnabled = &cors

	p.logger.Info(ctx, "connectivity probe succeeded", "bucket", p.creds.Bucket, "cors", cors)

	return ConnectivityStatus{
		Tested:  true,
		IsValid: true,
		Details: details,
		Message: fmt.Sprintf("Connected to bucket %q with write permission.", p.creds.Bucket),
	}
}

// objectURL builds the path-style public URL for a key.
func objectURL(creds credentials.OORTCredentials, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(creds.Endpoint, "/"), creds.Bucket, key)
}

// classify maps a remote failure to one of the sentinel connectivity errors.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return common.ErrProbeTimeout
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "InvalidAccessKeyId", "AccessKeyInvalid", "UnknownError403":
			return common.ErrInvalidAccessKey
		case "SignatureDoesNotMatch", "InvalidSecurity":
			return common.ErrInvalidSecretKey
		case "NoSuchBucket", "NotFound", "Forbidden", "AccessDenied":
			return common.ErrBucketInaccessible
		}
	}
	return err
}

// credentialFailureMessage renders the step-1 failure classes for the user.
func credentialFailureMessage(class error, orig error) string {
	switch {
	case errors.Is(class, common.ErrProbeTimeout):
		return "The storage endpoint did not respond within 10 seconds. Check the endpoint URL and your network."
	case errors.Is(class, common.ErrInvalidAccessKey):
		return "The access key is not recognized. Double-check the key or reset to defaults."
	case errors.Is(class, common.ErrInvalidSecretKey):
		return "The secret key does not match the access key."
	default:
		return fmt.Sprintf("Could not reach the storage endpoint (network or CORS issue): %v", orig)
	}
}
