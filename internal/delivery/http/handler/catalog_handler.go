package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/pkg/utils"
	"github.com/salar-zonal-stats/internal/pkg/validator"
	"github.com/salar-zonal-stats/internal/usecase"
	"github.com/salar-zonal-stats/internal/usecase/dto"
)

// CatalogHandler обрабатывает запросы каталога саларов и индексов
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler создает новый экземпляр CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListSalars godoc
// @Summary Каталог саларов
// @Description Возвращает салары, доступные для анализа, с фильтром по типу окружения
// @Tags Catalog
// @Produce json
// @Param environment query string false "Тип окружения" Enums(Costero, PreAndino, Andino)
// @Success 200 {object} utils.SuccessResponse{data=dto.SalarsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/salars [get]
func (h *CatalogHandler) ListSalars(c *fiber.Ctx) error {
	req := dto.ListSalarsRequest{Environment: c.Query("environment")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.catalogUC.ListSalars(c.UserContext(), req.Environment)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// ListIndices godoc
// @Summary Спектральные индексы
// @Description Возвращает поддерживаемые индексы и класс, который выделяет каждый из них
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.IndicesResponse}
// @Router /api/v1/indices [get]
func (h *CatalogHandler) ListIndices(c *fiber.Ctx) error {
	h.logger.Debug("Handling list indices request")

	return utils.SendSuccess(c, h.catalogUC.ListIndices(), nil)
}
