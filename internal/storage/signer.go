package storage

import (
    "fmt"
    "time"

    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/credentials"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/s3"

    "github.com/unclebandit/recruitbase-backend/internal/config"
)

// URLSigner issues time-limited download URLs for stored CV objects.
type URLSigner interface {
    SignedURL(bucket, key string, expiresIn time.Duration) (string, error)
}

// S3Signer signs GET requests against an S3-compatible object store.
type S3Signer struct {
    client *s3.S3
}

func NewS3Signer(cfg *config.Config) (*S3Signer, error) {
    sess, err := session.NewSession(&aws.Config{
        Endpoint:         aws.String(cfg.S3Endpoint),
        Region:           aws.String(cfg.S3Region),
        Credentials:      credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""),
        S3ForcePathStyle: aws.Bool(true),
    })
    if err != nil {
        return nil, fmt.Errorf("failed to create S3 session: %w", err)
    }

    return &S3Signer{client: s3.New(sess)}, nil
}

func (s *S3Signer) SignedURL(bucket, key string, expiresIn time.Duration) (string, error) {
    req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
        Bucket: aws.String(bucket),
        Key:    aws.String(key),
    })

    url, err := req.Presign(expiresIn)
    if err != nil {
        return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, key, err)
    }
    return url, nil
}

var _ URLSigner = (*S3Signer)(nil)
