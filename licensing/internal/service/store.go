package service

import (
	"context"
	"io"

	"github.com/Astemirdum/edu-licensing/licensing/internal/storage"
)

//go:generate go run github.com/golang/mock/mockgen -source=store.go -destination=mocks/mock.go

var _ ObjectStore = (*storage.Storage)(nil)

// ObjectStore keeps the contents of uploaded files.
type ObjectStore interface {
	Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}
