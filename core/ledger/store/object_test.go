package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"trade-ledger/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// failingReader surfaces err on the first read, like a lazily fetched minio object.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestObjectStore_Load(t *testing.T) {
	t.Run("Existing Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "trades", "ledger.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`[{"receiver":"alice","items":[]}]`))), nil)

		l, err := NewObjectStore(mockClient, "trades", "ledger.json").Load(context.Background())
		require.NoError(t, err)
		require.Len(t, l, 1)
		assert.Equal(t, "alice", l[0].Receiver)
	})

	t.Run("Missing On Get", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "trades", "ledger.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		l, err := NewObjectStore(mockClient, "trades", "ledger.json").Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, l)
	})

	t.Run("Missing On Read", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "trades", "ledger.json", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		l, err := NewObjectStore(mockClient, "trades", "ledger.json").Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, l)
	})

	t.Run("Access Denied", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "trades", "ledger.json", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "AccessDenied"}}, nil)

		_, err := NewObjectStore(mockClient, "trades", "ledger.json").Load(context.Background())
		assert.Error(t, err)
	})
}

func TestObjectStore_Save(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "trades", "ledger.json", mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json"
		})).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.JSONEq(t, `[{"receiver":"alice","items":[{"id":1,"name":"Sword","quantity":5}]}]`, string(data))
			assert.Equal(t, int64(len(data)), args.Get(4).(int64))
		}).
		Return(minio.UploadInfo{}, nil)

	err := NewObjectStore(mockClient, "trades", "ledger.json").Save(context.Background(), sample[:1])
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestObjectStore_Reset(t *testing.T) {
	t.Run("Removed", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("RemoveObject", mock.Anything, "trades", "ledger.json", mock.Anything).Return(nil)

		assert.NoError(t, NewObjectStore(mockClient, "trades", "ledger.json").Reset(context.Background()))
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("RemoveObject", mock.Anything, "trades", "ledger.json", mock.Anything).Return(errors.New("timeout"))

		assert.Error(t, NewObjectStore(mockClient, "trades", "ledger.json").Reset(context.Background()))
	})
}

func TestObjectStore_EnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "trades").Return(true, nil)

		assert.NoError(t, NewObjectStore(mockClient, "trades", "").EnsureBucket(context.Background()))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "trades").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "trades", mock.Anything).Return(nil)

		assert.NoError(t, NewObjectStore(mockClient, "trades", "").EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "trades").Return(false, errors.New("dns"))

		err := NewObjectStore(mockClient, "trades", "").EnsureBucket(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check bucket existence")
	})
}
