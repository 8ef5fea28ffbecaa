package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/delivery/http/middleware"
	"github.com/salar-zonal-stats/internal/pkg/errors"
	"github.com/salar-zonal-stats/internal/pkg/utils"
	"github.com/salar-zonal-stats/internal/pkg/validator"
	"github.com/salar-zonal-stats/internal/usecase"
	"github.com/salar-zonal-stats/internal/usecase/dto"
)

// ZonalHandler - обработчик запросов зональной статистики
type ZonalHandler struct {
	zonalUC          *usecase.ZonalStatsUseCase
	interpretationUC *usecase.InterpretationUseCase
	logger           *zap.Logger
}

// NewZonalHandler - создание нового ZonalHandler
func NewZonalHandler(
	zonalUC *usecase.ZonalStatsUseCase,
	interpretationUC *usecase.InterpretationUseCase,
	logger *zap.Logger,
) *ZonalHandler {
	return &ZonalHandler{
		zonalUC:          zonalUC,
		interpretationUC: interpretationUC,
		logger:           logger,
	}
}

// GenerateStats godoc
// @Summary Зональная статистика индекса
// @Description Рассчитывает статистику спектрального индекса по классам покрытия салара (Water, Vegetated-Wetland, Salt-Crust, Bare-Ground). Неизвестный индекс обрабатывается обобщённым распределением.
// @Tags Zonal Statistics
// @Accept json
// @Produce json
// @Param request body dto.ZonalStatsRequest true "Зона, индекс, год и сезон"
// @Success 200 {object} utils.SuccessResponse{data=domain.ZonalResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/zonal-stats [post]
func (h *ZonalHandler) GenerateStats(c *fiber.Ctx) error {
	var req dto.ZonalStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.zonalUC.Generate(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Failed to generate zonal statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.Stats),
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
		RequestID: middleware.GetRequestID(c),
	})
}

// Analyze godoc
// @Summary Статистика с интерпретацией
// @Description Рассчитывает зональную статистику и добавляет текстовую интерпретацию состояния салара. При недоступности модели возвращается текст-заглушка.
// @Tags Zonal Statistics
// @Accept json
// @Produce json
// @Param request body dto.ZonalStatsRequest true "Зона, индекс, год и сезон"
// @Success 200 {object} utils.SuccessResponse{data=dto.AnalysisResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/analysis [post]
func (h *ZonalHandler) Analyze(c *fiber.Ctx) error {
	var req dto.ZonalStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	resp, err := h.zonalUC.Analyze(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Failed to analyze zone", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
		RequestID: middleware.GetRequestID(c),
	})
}

// Interpret godoc
// @Summary Интерпретация готовой статистики
// @Description Возвращает текстовую интерпретацию для ранее полученных медиан и площадей классов.
// @Tags Zonal Statistics
// @Accept json
// @Produce json
// @Param request body dto.InterpretRequest true "Медианы и площади классов"
// @Success 200 {object} utils.SuccessResponse{data=dto.InterpretationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/interpretations [post]
func (h *ZonalHandler) Interpret(c *fiber.Ctx) error {
	var req dto.InterpretRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	text := h.interpretationUC.Interpret(c.UserContext(), req.ToZonalResult())

	return utils.SendSuccess(c, dto.InterpretationResponse{Interpretation: text}, &utils.Meta{
		RequestID: middleware.GetRequestID(c),
	})
}
