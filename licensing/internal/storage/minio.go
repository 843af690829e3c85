package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Endpoint        string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"MINIO_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"MINIO_SECRET_KEY" json:"-"`
	UseSSL          bool   `envconfig:"MINIO_USE_SSL"`
	BucketName      string `envconfig:"MINIO_BUCKET" default:"uploads"`
}

// Storage keeps uploaded file contents in a MinIO bucket; the database only holds object keys.
type Storage struct {
	client *minio.Client
	bucket string
	log    *zap.Logger
}

func New(ctx context.Context, cfg Config, log *zap.Logger) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio.New")
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, errors.Wrap(err, "BucketExists")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "MakeBucket %s", cfg.BucketName)
		}
		log.Info("bucket created", zap.String("bucket", cfg.BucketName))
	}

	return &Storage{
		client: client,
		bucket: cfg.BucketName,
		log:    log.Named("storage"),
	}, nil
}

func (s *Storage) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "PutObject %s", objectName)
	}
	s.log.Debug("object stored", zap.String("key", info.Key), zap.Int64("size", info.Size))
	return s.bucket + "/" + info.Key, nil
}

func (s *Storage) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
