package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"hotelagent/internal/storage"
)

// MockStorage is a testify mock of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, opt storage.PresignOptions) (string, error) {
	args := m.Called(ctx, key, opt)
	return args.String(0), args.Error(1)
}
