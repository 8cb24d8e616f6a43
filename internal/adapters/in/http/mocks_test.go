package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockQueryHandler[Q any, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}
