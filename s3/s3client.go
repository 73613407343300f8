package s3client

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"ims-backend/config"
)

type Provider interface {
	MakeBucket(ctx context.Context) error
	Upload(ctx context.Context, objectKey, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)
	Remove(ctx context.Context, objectKey string) error
}

var Instance Provider

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &s3client{
		minioClient: minioClient,
		bucketName:  config.Conf.S3.BucketName,
	}, nil
}

func (s s3client) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (s s3client) Upload(ctx context.Context, objectKey, contentType string, reader io.Reader, size int64) error {
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s s3client) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return s.minioClient.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
}

func (s s3client) Remove(ctx context.Context, objectKey string) error {
	return s.minioClient.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
}
