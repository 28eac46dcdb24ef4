// Package storage contains object storage abstractions for S3-compatible backends.
// Implementations rely on streaming I/O only and never touch local disk.
package storage

import (
	"context"
	"io"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size         int64
	ContentType  string
	CacheControl string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is a bucket-scoped object store whose objects are publicly readable.
type Storage interface {
	// Put uploads an object under the given key, overwriting any existing object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the unauthenticated URL of the object.
	PublicURL(key string) string
}
