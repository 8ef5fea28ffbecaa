package dto

import "github.com/salar-zonal-stats/internal/domain"

// AnalysisResponse - результат расчёта вместе с текстовой интерпретацией
type AnalysisResponse struct {
	Result         *domain.ZonalResult `json:"result"`
	Interpretation string              `json:"interpretation"`
}

// InterpretationResponse - текстовая интерпретация результата
type InterpretationResponse struct {
	Interpretation string `json:"interpretation"`
}

// SalarsResponse - список саларов каталога
type SalarsResponse struct {
	Salars []domain.Salar `json:"salars"`
	Total  int            `json:"total"`
}

// IndicesResponse - список поддерживаемых индексов
type IndicesResponse struct {
	Indices []domain.IndexInfo `json:"indices"`
}

// ToZonalResult собирает ZonalResult из запроса на интерпретацию
func (r InterpretRequest) ToZonalResult() *domain.ZonalResult {
	stats := make([]domain.ClassStatistics, 0, len(r.Stats))
	total := 0
	for _, s := range r.Stats {
		stats = append(stats, domain.ClassStatistics{
			ClassName: domain.LandClass(s.ClassName),
			Median:    s.Median,
			AreaHa:    s.AreaHa,
		})
		total += s.AreaHa
	}
	return &domain.ZonalResult{
		AreaName:  r.AreaName,
		IndexUsed: domain.SpectralIndex(r.IndexUsed),
		Stats:     stats,
		TotalArea: total,
	}
}
