package service

import "context"

// ArchiveStore keeps raw provider responses for auditing.
type ArchiveStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}
