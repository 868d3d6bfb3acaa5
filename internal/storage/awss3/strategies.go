package awss3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/netx"
	"github.com/LabsDAO/data-gamify-network/internal/storage/sigv4"
)

// Seams for the SDK and HTTP calls, stubbed in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg awssdk.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	sdkPutObject = func(ctx context.Context, c *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	httpPut = netx.Put
)

// strategy is one independent way of delivering an object. Each attempt is
// self-contained; a failure is swallowed by the orchestrator and the next
// strategy runs against the same key.
type strategy interface {
	name() string
	attempt(ctx context.Context, creds credentials.AWSCredentials, key string, body []byte, contentType string) (string, error)
}

func newClient(ctx context.Context, creds credentials.AWSCredentials) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(creds.Region),
		awsconfig.WithCredentialsProvider(awscreds.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}
	return newS3ClientFromConfig(cfg), nil
}

// objectURL is the virtual-hosted public URL for a key.
func objectURL(creds credentials.AWSCredentials, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", creds.Bucket, creds.Region, key)
}

// sdkPut delivers through the SDK's PutObject with explicit credentials.
type sdkPut struct{}

func (sdkPut) name() string { return "sdk-put" }

func (sdkPut) attempt(ctx context.Context, creds credentials.AWSCredentials, key string, body []byte, contentType string) (string, error) {
	client, err := newClient(ctx, creds)
	if err != nil {
		return "", err
	}

	_, err = sdkPutObject(ctx, client, &s3.PutObjectInput{
		Bucket:      awssdk.String(creds.Bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(body),
		ContentType: awssdk.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}
	return objectURL(creds, key), nil
}

// signedPut delivers with a raw HTTP PUT carrying a hand-built SigV4
// authorization header and the bucket ACL header.
type signedPut struct{}

func (signedPut) name() string { return "signed-put" }

func (signedPut) attempt(ctx context.Context, creds credentials.AWSCredentials, key string, body []byte, contentType string) (string, error) {
	rawURL := objectURL(creds, key)
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	signer := sigv4.New(creds.AccessKeyID, creds.SecretAccessKey, creds.Region)
	headers := signer.SignPut(parsed, body, map[string]string{
		"Content-Type": contentType,
		"x-amz-acl":    "public-read",
	})

	if err := httpPut(ctx, rawURL, body, headers); err != nil {
		return "", err
	}
	return rawURL, nil
}

// presignedPut asks the SDK for a presigned PUT URL and delivers with a
// plain HTTP client.
type presignedPut struct{}

func (presignedPut) name() string { return "presigned-put" }

func (presignedPut) attempt(ctx context.Context, creds credentials.AWSCredentials, key string, body []byte, contentType string) (string, error) {
	client, err := newClient(ctx, creds)
	if err != nil {
		return "", err
	}

	req, err := presignPutObject(newS3PresignClient(client), ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(creds.Bucket),
		Key:         awssdk.String(key),
		ContentType: awssdk.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	headers := map[string]string{"Content-Type": contentType}
	for k, vs := range req.SignedHeader {
		if len(vs) > 0 {
			headers[k] = vs[0]
		}
	}

	if err := httpPut(ctx, req.URL, body, headers); err != nil {
		return "", err
	}
	return objectURL(creds, key), nil
}
