package domain

import "gonum.org/v1/gonum/stat"

// LandClass - класс покрытия поверхности в классификации салара
type LandClass string

const (
	LandClassWater            LandClass = "Water"
	LandClassVegetatedWetland LandClass = "Vegetated-Wetland"
	LandClassSaltCrust        LandClass = "Salt-Crust"
	LandClassBareGround       LandClass = "Bare-Ground"
)

var landClasses = []LandClass{
	LandClassWater,
	LandClassVegetatedWetland,
	LandClassSaltCrust,
	LandClassBareGround,
}

// LandClasses возвращает все классы в порядке перечисления
func LandClasses() []LandClass {
	out := make([]LandClass, len(landClasses))
	copy(out, landClasses)
	return out
}

// SpectralIndex - идентификатор спектрального индекса
type SpectralIndex string

const (
	IndexNDVI           SpectralIndex = "NDVI"
	IndexNDWI           SpectralIndex = "NDWI"
	IndexNDSI           SpectralIndex = "NDSI"
	IndexAlbedo         SpectralIndex = "Albedo"
	IndexBSI            SpectralIndex = "BSI"
	IndexClassification SpectralIndex = "Classification"
)

var spectralIndices = []SpectralIndex{
	IndexNDVI,
	IndexNDWI,
	IndexNDSI,
	IndexAlbedo,
	IndexBSI,
	IndexClassification,
}

// SpectralIndices возвращает известные индексы
func SpectralIndices() []SpectralIndex {
	out := make([]SpectralIndex, len(spectralIndices))
	copy(out, spectralIndices)
	return out
}

// IsKnown проверяет, входит ли индекс в известный набор
func (i SpectralIndex) IsKnown() bool {
	for _, known := range spectralIndices {
		if i == known {
			return true
		}
	}
	return false
}

// TargetClass возвращает класс, который должен выделяться для индекса
func TargetClass(index SpectralIndex) (LandClass, bool) {
	switch index {
	case IndexNDWI:
		return LandClassWater, true
	case IndexNDVI:
		return LandClassVegetatedWetland, true
	case IndexNDSI, IndexAlbedo:
		return LandClassSaltCrust, true
	case IndexBSI:
		return LandClassBareGround, true
	}
	return "", false
}

// Season - сезон съёмки. Не влияет на генерацию статистики.
type Season string

const (
	SeasonSummer Season = "Verano"
	SeasonAutumn Season = "Otoño"
	SeasonWinter Season = "Invierno"
	SeasonSpring Season = "Primavera"
)

// ClassStatistics - зональная статистика индекса для одного класса
type ClassStatistics struct {
	ClassName LandClass `json:"class_name"`
	Mean      float64   `json:"mean"`
	Median    float64   `json:"median"`
	Q1        float64   `json:"q1"`
	Q3        float64   `json:"q3"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	StdDev    float64   `json:"std_dev"`
	Variance  float64   `json:"variance"`
	AreaHa    int       `json:"area_ha"`
	Count     int       `json:"count"`
}

// SceneMetadata - метаданные сцены, из которой якобы получена статистика
type SceneMetadata struct {
	Title                     string  `json:"title"`
	Abstract                  string  `json:"abstract"`
	Status                    string  `json:"status"`
	TopicCategory             string  `json:"topic_category"`
	CRS                       string  `json:"crs"`
	Datum                     string  `json:"datum"`
	SpatialRepresentationType string  `json:"spatial_representation_type"`
	Resolution                string  `json:"resolution"`
	Sensor                    string  `json:"sensor"`
	Platform                  string  `json:"platform"`
	ProcessingLevel           string  `json:"processing_level"`
	Lineage                   string  `json:"lineage"`
	CloudCover                float64 `json:"cloud_cover"`
	SceneID                   string  `json:"scene_id"`
	DateStamp                 string  `json:"date_stamp"`
	SunElevation              float64 `json:"sun_elevation"`
	SunAzimuth                float64 `json:"sun_azimuth"`
	Identifier                string  `json:"identifier"`
	DistributionFormat        string  `json:"distribution_format"`
}

// ZonalResult - результат зонального анализа
type ZonalResult struct {
	AreaName  string            `json:"area_name"`
	IndexUsed SpectralIndex     `json:"index_used"`
	Timestamp string            `json:"timestamp"`
	Stats     []ClassStatistics `json:"stats"`
	TotalArea int               `json:"total_area"`
	Snippet   string            `json:"snippet"`
	Metadata  SceneMetadata     `json:"metadata"`
}

// ClassStats возвращает статистику класса
func (r *ZonalResult) ClassStats(class LandClass) (ClassStatistics, bool) {
	for _, s := range r.Stats {
		if s.ClassName == class {
			return s, true
		}
	}
	return ClassStatistics{}, false
}

// AreaShare - доля площади класса в процентах от общей площади
func (r *ZonalResult) AreaShare(class LandClass) float64 {
	if r.TotalArea == 0 {
		return 0
	}
	s, ok := r.ClassStats(class)
	if !ok {
		return 0
	}
	return float64(s.AreaHa) / float64(r.TotalArea) * 100
}

// WeightedMedian - средняя медиана классов, взвешенная по площади
func (r *ZonalResult) WeightedMedian() float64 {
	if len(r.Stats) == 0 || r.TotalArea == 0 {
		return 0
	}
	medians := make([]float64, len(r.Stats))
	weights := make([]float64, len(r.Stats))
	for i, s := range r.Stats {
		medians[i] = s.Median
		weights[i] = float64(s.AreaHa)
	}
	return stat.Mean(medians, weights)
}
