package dto

// ZonalStatsRequest - запрос на расчёт зональной статистики
type ZonalStatsRequest struct {
	AreaName string `json:"area_name" validate:"required,min=2,max=100"`
	// Неизвестный индекс допустим: генератор вернёт обобщённое распределение
	Index string `json:"index" validate:"required,max=32"`
	Year  int    `json:"year" validate:"required,min=1984,max=2100"`
	// Сезон передаётся как часть конфигурации сцены и не влияет на статистику
	Season string `json:"season,omitempty" validate:"omitempty,max=32"`
}

// InterpretRequest - запрос на интерпретацию готового результата
type InterpretRequest struct {
	AreaName  string            `json:"area_name" validate:"required"`
	IndexUsed string            `json:"index_used" validate:"required"`
	Stats     []ClassStatsInput `json:"stats" validate:"required,min=1,max=16,dive"`
}

// ClassStatsInput - минимальные данные класса, нужные для промпта
type ClassStatsInput struct {
	ClassName string  `json:"class_name" validate:"required"`
	Median    float64 `json:"median"`
	AreaHa    int     `json:"area_ha" validate:"min=0"`
}

// ListSalarsRequest - фильтр каталога саларов
type ListSalarsRequest struct {
	Environment string `json:"environment" validate:"omitempty,oneof=Costero PreAndino Andino"`
}
