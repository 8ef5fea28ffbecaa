package domain

// Environment - тип окружения салара
type Environment string

const (
	EnvironmentCoastal   Environment = "Costero"
	EnvironmentPreAndean Environment = "PreAndino"
	EnvironmentAndean    Environment = "Andino"
)

// Environments возвращает все типы окружения
func Environments() []Environment {
	return []Environment{EnvironmentCoastal, EnvironmentPreAndean, EnvironmentAndean}
}

// IsValid проверяет, что окружение входит в известный набор
func (e Environment) IsValid() bool {
	for _, known := range Environments() {
		if e == known {
			return true
		}
	}
	return false
}

// Salar представляет солончак из каталога зон исследования
type Salar struct {
	Name        string      `json:"name" db:"name"`
	Environment Environment `json:"environment" db:"environment"`
	Lat         float64     `json:"lat" db:"lat"`
	Lng         float64     `json:"lng" db:"lng"`
}

// IndexInfo - описание спектрального индекса для UI
type IndexInfo struct {
	Index       SpectralIndex `json:"index"`
	TargetClass *LandClass    `json:"target_class,omitempty"`
}
