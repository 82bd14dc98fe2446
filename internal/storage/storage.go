// Package storage uploads bill exports to an S3-compatible bucket and shares them through pre-signed URLs.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions describe an upload. Size is the exact byte count, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the backend reports about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// PresignOptions shape a download link.
type PresignOptions struct {
	Expiry time.Duration
	// DownloadName, when set, makes browsers save the object under this file name.
	DownloadName string
}

// Storage is the object store used for exports.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	PresignGet(ctx context.Context, key string, opt PresignOptions) (string, error)
}
