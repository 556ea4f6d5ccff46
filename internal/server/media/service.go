// Package media issues presigned upload and download URLs for gallery
// images kept in S3-compatible object storage. The backend never proxies
// image bytes itself.
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/vrajdev/sadhana-backend/internal/server/config"
)

const presignValidity = 15 * time.Minute

// presignAPI is the subset of s3.PresignClient used by this service;
// tests inject a fake.
type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Service struct {
	config     *sc.Config
	newPresign func() (presignAPI, error)
}

func NewService(config *sc.Config) *Service {
	s := &Service{config: config}
	s.newPresign = s.getPresignClient
	return s
}

// GetRandomStorageKey produces a collision-free object key partitioned by
// upload date.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("gallery/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient() (presignAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// GetPresignedPutUrl returns a fresh object key and a URL the client can
// PUT the image bytes to within the presign validity window.
func (s *Service) GetPresignedPutUrl(ctx context.Context) (string, string, error) {

	presignClient, err := s.newPresign()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetUrl returns a time-boxed download URL for a stored object.
func (s *Service) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {

	presignClient, err := s.newPresign()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
