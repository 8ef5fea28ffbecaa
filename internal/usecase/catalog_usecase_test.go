package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain"
	apperrors "github.com/salar-zonal-stats/internal/pkg/errors"
	"github.com/salar-zonal-stats/internal/usecase"
)

func TestCatalogUseCase_ListSalars(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	salars := []domain.Salar{
		{Name: "Maricunga", Environment: domain.EnvironmentAndean, Lat: -26.92, Lng: -69.08},
		{Name: "Salar Grande", Environment: domain.EnvironmentCoastal, Lat: -21.0, Lng: -70.0},
	}

	t.Run("all salars", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("List", ctx).Return(salars, nil).Once()

		resp, err := uc.ListSalars(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, salars, resp.Salars)
		repo.AssertExpectations(t)
	})

	t.Run("filtered by environment", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("ListByEnvironment", ctx, domain.EnvironmentAndean).Return(salars[:1], nil).Once()

		resp, err := uc.ListSalars(ctx, "Andino")

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		repo.AssertExpectations(t)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("ListByEnvironment", ctx, domain.EnvironmentCoastal).Return(nil, nil).Once()

		resp, err := uc.ListSalars(ctx, "Costero")

		require.NoError(t, err)
		assert.NotNil(t, resp.Salars)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("invalid environment", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)

		resp, err := uc.ListSalars(ctx, "Lunar")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidEnvironment)
		repo.AssertNotCalled(t, "ListByEnvironment")
	})

	t.Run("backend failure", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("List", ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := uc.ListSalars(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	})
}

func TestCatalogUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("GetByName", ctx, "maricunga").
			Return(&domain.Salar{Name: "Maricunga", Environment: domain.EnvironmentAndean}, nil).Once()

		salar, err := uc.Resolve(ctx, "maricunga")

		require.NoError(t, err)
		assert.Equal(t, "Maricunga", salar.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("GetByName", ctx, "Uyuni").Return(nil, nil).Once()

		salar, err := uc.Resolve(ctx, "Uyuni")

		assert.NoError(t, err)
		assert.Nil(t, salar)
	})

	t.Run("backend failure", func(t *testing.T) {
		repo := &MockSalarRepository{}
		uc := usecase.NewCatalogUseCase(repo, logger)
		repo.On("GetByName", ctx, "Maricunga").Return(nil, errors.New("timeout")).Once()

		_, err := uc.Resolve(ctx, "Maricunga")

		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	})
}

func TestCatalogUseCase_ListIndices(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&MockSalarRepository{}, zap.NewNop())

	resp := uc.ListIndices()

	require.Len(t, resp.Indices, len(domain.SpectralIndices()))
	for _, info := range resp.Indices {
		expected, ok := domain.TargetClass(info.Index)
		if !ok {
			assert.Nil(t, info.TargetClass, "index %s", info.Index)
			continue
		}
		require.NotNil(t, info.TargetClass, "index %s", info.Index)
		assert.Equal(t, expected, *info.TargetClass)
	}
}
