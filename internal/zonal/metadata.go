package zonal

import (
	"fmt"
	"strings"
	"time"

	"github.com/salar-zonal-stats/internal/domain"
)

const (
	dateStampLayout = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

const snippetTemplate = `// Earth Engine Zonal Statistics Snippet
var indexImg = calculate%s(scene);
var zones = classification.select('label');
var zonalStats = indexImg.reduceRegions({
  collection: zones.toIndices(),
  reducer: ee.Reducer.median().combine(ee.Reducer.stdDev(), null, true),
  scale: 30
});`

// Snippet returns the reduceRegions code the statistics pretend to come from.
func Snippet(index domain.SpectralIndex) string {
	return fmt.Sprintf(snippetTemplate, index)
}

func buildMetadata(areaName string, index domain.SpectralIndex, year int, now time.Time) domain.SceneMetadata {
	return domain.SceneMetadata{
		Title: fmt.Sprintf("Segmented Zonal Analysis: %s over RF Classification", index),
		Abstract: fmt.Sprintf(
			"This report presents the statistical distribution of the %s index computed exclusively over "+
				"the geometries produced by the Random Forest classification of Salar de %s.",
			index, areaName,
		),
		Status:                    "Completed",
		TopicCategory:             "Remote Sensing",
		CRS:                       "WGS 84 / UTM 19S",
		Datum:                     "WGS 84",
		SpatialRepresentationType: "Raster/Vector",
		Resolution:                "30m",
		Sensor:                    "OLI-2",
		Platform:                  "Landsat 9",
		ProcessingLevel:           "L2",
		Lineage: "1. Classification generation. 2. Index computation. " +
			"3. Spatial intersection. 4. Statistical reduction.",
		CloudCover:         0.02,
		SceneID:            fmt.Sprintf("L9_%s_%d_%s_ZONAL_STATS", sceneToken(areaName), year, index),
		DateStamp:          now.UTC().Format(dateStampLayout),
		SunElevation:       45.2,
		SunAzimuth:         110.1,
		Identifier:         fmt.Sprintf("ROI-%s-%s", prefix(areaName, 3), index),
		DistributionFormat: "GEOTIFF/JSON",
	}
}

func sceneToken(areaName string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(areaName)), " ", "_")
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
