// Package credentials resolves the active storage credentials per provider:
// a durable user override when one was saved, otherwise environment-provided
// values, otherwise built-in defaults. It also owns the per-provider
// real-vs-simulated mode flags.
package credentials

import (
	"fmt"
	"os"

	"github.com/LabsDAO/data-gamify-network/internal/common"
)

// AWSCredentials configures uploads to AWS S3.
type AWSCredentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
}

// Validate rejects credentials with any required field empty. Callers must
// not attempt a network call when Validate fails.
func (c AWSCredentials) Validate() error {
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("aws access key or secret key is empty: %w", common.ErrMissingCredentials)
	}
	if c.Bucket == "" {
		return fmt.Errorf("aws: %w", common.ErrMissingBucket)
	}
	if c.Region == "" {
		return fmt.Errorf("aws region is empty: %w", common.ErrMissingCredentials)
	}
	return nil
}

// OORTCredentials configures uploads to OORT's S3-compatible storage.
type OORTCredentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	Endpoint        string `json:"endpoint"`
	Bucket          string `json:"bucket"`
}

func (c OORTCredentials) Validate() error {
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("oort access key or secret key is empty: %w", common.ErrMissingCredentials)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("oort endpoint is empty: %w", common.ErrMissingCredentials)
	}
	if c.Bucket == "" {
		return fmt.Errorf("oort: %w", common.ErrMissingBucket)
	}
	return nil
}

// DefaultAWS returns the environment-provided AWS credentials, falling back
// to the development defaults for region and bucket.
func DefaultAWS() AWSCredentials {
	return AWSCredentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Region:          envOr("AWS_REGION", "us-east-1"),
		Bucket:          envOr("AWS_UPLOAD_BUCKET", "labsmarket-uploads"),
	}
}

// DefaultOORT returns the environment-provided OORT credentials, falling
// back to the fixed default endpoint and bucket.
func DefaultOORT() OORTCredentials {
	return OORTCredentials{
		AccessKeyID:     os.Getenv("OORT_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("OORT_SECRET_KEY"),
		Endpoint:        envOr("OORT_ENDPOINT", "https://s3-standard.oortech.com"),
		Bucket:          envOr("OORT_BUCKET", "labsmarket"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
