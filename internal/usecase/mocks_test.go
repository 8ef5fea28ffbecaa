package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/salar-zonal-stats/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetInterpretation(ctx context.Context, promptHash string) (string, bool, error) {
	args := m.Called(ctx, promptHash)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetInterpretation(ctx context.Context, promptHash, text string, ttl time.Duration) error {
	args := m.Called(ctx, promptHash, text, ttl)
	return args.Error(0)
}

// MockInterpreter is a mock of Interpreter
type MockInterpreter struct {
	mock.Mock
}

func (m *MockInterpreter) Interpret(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockSalarRepository is a mock of SalarRepository
type MockSalarRepository struct {
	mock.Mock
}

func (m *MockSalarRepository) List(ctx context.Context) ([]domain.Salar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salar), args.Error(1)
}

func (m *MockSalarRepository) ListByEnvironment(ctx context.Context, env domain.Environment) ([]domain.Salar, error) {
	args := m.Called(ctx, env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salar), args.Error(1)
}

func (m *MockSalarRepository) GetByName(ctx context.Context, name string) (*domain.Salar, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salar), args.Error(1)
}

// MockGenerator is a mock of StatisticsGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(areaName string, index domain.SpectralIndex, year int, season domain.Season) *domain.ZonalResult {
	args := m.Called(areaName, index, year, season)
	return args.Get(0).(*domain.ZonalResult)
}

func sampleResult(area string, index domain.SpectralIndex) *domain.ZonalResult {
	return &domain.ZonalResult{
		AreaName:  area,
		IndexUsed: index,
		Stats: []domain.ClassStatistics{
			{ClassName: domain.LandClassWater, Median: 0.8, AreaHa: 300},
			{ClassName: domain.LandClassVegetatedWetland, Median: 0.2, AreaHa: 100},
			{ClassName: domain.LandClassSaltCrust, Median: -0.5, AreaHa: 400},
			{ClassName: domain.LandClassBareGround, Median: -0.4, AreaHa: 200},
		},
		TotalArea: 1000,
	}
}
