// Package oort implements the OORT (S3-compatible) storage provider: the
// sequential connectivity prober and the direct-PUT uploader.
package oort

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/netx"
)

// OORT buckets live behind a single endpoint; the SigV4 scope region is
// fixed.
const signingRegion = "us-east-1"

// Seams for the SDK calls, stubbed in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg awssdk.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	listBuckets = func(ctx context.Context, c *s3.Client, in *s3.ListBucketsInput) (*s3.ListBucketsOutput, error) {
		return c.ListBuckets(ctx, in)
	}

	headBucket = func(ctx context.Context, c *s3.Client, in *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		return c.HeadBucket(ctx, in)
	}

	putObject = func(ctx context.Context, c *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	headObjectURL = netx.Head
	putObjectURL  = netx.Put
)

// newClient builds an S3 client pointed at the OORT endpoint (path-style).
func newClient(ctx context.Context, creds credentials.OORTCredentials) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(signingRegion),
		awsconfig.WithCredentialsProvider(awscreds.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = awssdk.String(creds.Endpoint)
		o.UsePathStyle = true
	})

	return client, nil
}
