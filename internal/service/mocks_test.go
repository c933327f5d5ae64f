package service_test

import (
	"context"

	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	args := m.Called(ctx)
	businesses, _ := args.Get(0).([]models.Business)
	return businesses, args.Error(1)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) ReplaceBusinesses(ctx context.Context, businesses []models.Business) (int64, error) {
	args := m.Called(ctx, businesses)
	return args.Get(0).(int64), args.Error(1)
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) WriteMatches(matches []models.Match) error {
	args := m.Called(matches)
	return args.Error(0)
}
