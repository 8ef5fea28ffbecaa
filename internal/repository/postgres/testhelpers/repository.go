package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/domain/repository"
	"github.com/salar-zonal-stats/internal/repository/postgres"
)

// NewSalarRepositoryForTest creates a salar repository with test database and logger
func NewSalarRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SalarRepository {
	return postgres.NewSalarRepository(postgres.NewDBForTest(db, logger), logger)
}
