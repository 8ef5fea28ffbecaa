package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/repository/memory"
)

func TestSalarRepository_List(t *testing.T) {
	repo := memory.NewSalarRepository()

	salars, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, salars, len(memory.DefaultSalars))

	for i := 1; i < len(salars); i++ {
		assert.Less(t, salars[i-1].Name, salars[i].Name, "list must be sorted by name")
	}
}

func TestSalarRepository_ListByEnvironment(t *testing.T) {
	repo := memory.NewSalarRepository()
	ctx := context.Background()

	andean, err := repo.ListByEnvironment(ctx, domain.EnvironmentAndean)
	require.NoError(t, err)
	require.NotEmpty(t, andean)
	for _, s := range andean {
		assert.Equal(t, domain.EnvironmentAndean, s.Environment)
	}

	none, err := repo.ListByEnvironment(ctx, domain.Environment("Lunar"))
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestSalarRepository_GetByName(t *testing.T) {
	repo := memory.NewSalarRepository(
		domain.Salar{Name: "Maricunga", Environment: domain.EnvironmentAndean, Lat: -26.92, Lng: -69.08},
	)
	ctx := context.Background()

	s, err := repo.GetByName(ctx, "  maricunga ")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Maricunga", s.Name)

	missing, err := repo.GetByName(ctx, "Uyuni")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSalarRepository_ListReturnsCopy(t *testing.T) {
	repo := memory.NewSalarRepository()
	ctx := context.Background()

	first, _ := repo.List(ctx)
	first[0].Name = "Mutated"

	second, _ := repo.List(ctx)
	assert.NotEqual(t, "Mutated", second[0].Name)
}
