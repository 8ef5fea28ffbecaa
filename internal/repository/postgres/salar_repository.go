package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/domain/repository"
)

type salarRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSalarRepository создаёт каталог саларов поверх таблицы salars
func NewSalarRepository(db *DB, logger *zap.Logger) repository.SalarRepository {
	return &salarRepository{
		db:     db,
		logger: logger,
	}
}

func (r *salarRepository) List(ctx context.Context) ([]domain.Salar, error) {
	query := `
		SELECT name, environment, lat, lng
		FROM salars
		ORDER BY name
	`

	salars := make([]domain.Salar, 0)
	if err := r.db.SelectContext(ctx, &salars, query); err != nil {
		r.logger.Error("failed to list salars", zap.Error(err))
		return nil, fmt.Errorf("list salars: %w", err)
	}

	return salars, nil
}

func (r *salarRepository) ListByEnvironment(ctx context.Context, env domain.Environment) ([]domain.Salar, error) {
	query := `
		SELECT name, environment, lat, lng
		FROM salars
		WHERE environment = $1
		ORDER BY name
	`

	salars := make([]domain.Salar, 0)
	if err := r.db.SelectContext(ctx, &salars, query, string(env)); err != nil {
		r.logger.Error("failed to list salars by environment",
			zap.String("environment", string(env)),
			zap.Error(err))
		return nil, fmt.Errorf("list salars by environment: %w", err)
	}

	return salars, nil
}

func (r *salarRepository) GetByName(ctx context.Context, name string) (*domain.Salar, error) {
	query := `
		SELECT name, environment, lat, lng
		FROM salars
		WHERE lower(name) = lower(trim($1))
		LIMIT 1
	`

	var salar domain.Salar
	err := r.db.GetContext(ctx, &salar, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get salar by name", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("get salar by name: %w", err)
	}

	return &salar, nil
}
