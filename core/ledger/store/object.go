package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"trade-ledger/core/ledger"
	"trade-ledger/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the serialized ledger as an object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store for the object name in bucket.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	if object == "" {
		object = DefaultKey
	}
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Load implements Store.
func (s *ObjectStore) Load(ctx context.Context) (ledger.Ledger, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if storage.IsNotFound(err) {
		return ledger.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger object %s: %w", s.object, err)
	}
	defer obj.Close()

	// Minio reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if storage.IsNotFound(err) {
		return ledger.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger object %s: %w", s.object, err)
	}
	return Decode(data)
}

// Save implements Store.
func (s *ObjectStore) Save(ctx context.Context, l ledger.Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put ledger object %s: %w", s.object, err)
	}
	return nil
}

// Reset implements Store.
func (s *ObjectStore) Reset(ctx context.Context) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.object, minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to remove ledger object %s: %w", s.object, err)
	}
	return nil
}
