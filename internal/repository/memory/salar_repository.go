package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/domain/repository"
)

// DefaultSalars - встроенный каталог саларов северного Чили
var DefaultSalars = []domain.Salar{
	{Name: "Grande", Environment: domain.EnvironmentCoastal, Lat: -20.95, Lng: -70.02},
	{Name: "Llamara", Environment: domain.EnvironmentCoastal, Lat: -21.27, Lng: -69.62},
	{Name: "Del Carmen", Environment: domain.EnvironmentCoastal, Lat: -23.62, Lng: -70.35},
	{Name: "Atacama", Environment: domain.EnvironmentPreAndean, Lat: -23.50, Lng: -68.25},
	{Name: "Punta Negra", Environment: domain.EnvironmentPreAndean, Lat: -24.55, Lng: -68.95},
	{Name: "Imilac", Environment: domain.EnvironmentPreAndean, Lat: -24.22, Lng: -68.98},
	{Name: "Maricunga", Environment: domain.EnvironmentAndean, Lat: -26.92, Lng: -69.08},
	{Name: "Pedernales", Environment: domain.EnvironmentAndean, Lat: -26.23, Lng: -69.13},
	{Name: "Surire", Environment: domain.EnvironmentAndean, Lat: -18.83, Lng: -69.05},
	{Name: "Huasco", Environment: domain.EnvironmentAndean, Lat: -20.28, Lng: -68.87},
	{Name: "Coposa", Environment: domain.EnvironmentAndean, Lat: -20.65, Lng: -68.65},
	{Name: "Aguas Calientes", Environment: domain.EnvironmentAndean, Lat: -25.00, Lng: -68.60},
}

type salarRepository struct {
	salars []domain.Salar
}

// NewSalarRepository создаёт каталог в памяти. Без аргументов используется DefaultSalars.
func NewSalarRepository(salars ...domain.Salar) repository.SalarRepository {
	if len(salars) == 0 {
		salars = DefaultSalars
	}
	sorted := make([]domain.Salar, len(salars))
	copy(sorted, salars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return &salarRepository{salars: sorted}
}

func (r *salarRepository) List(_ context.Context) ([]domain.Salar, error) {
	out := make([]domain.Salar, len(r.salars))
	copy(out, r.salars)
	return out, nil
}

func (r *salarRepository) ListByEnvironment(_ context.Context, env domain.Environment) ([]domain.Salar, error) {
	out := make([]domain.Salar, 0)
	for _, s := range r.salars {
		if s.Environment == env {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *salarRepository) GetByName(_ context.Context, name string) (*domain.Salar, error) {
	name = strings.TrimSpace(name)
	for _, s := range r.salars {
		if strings.EqualFold(s.Name, name) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}
