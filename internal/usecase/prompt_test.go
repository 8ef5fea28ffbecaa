package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salar-zonal-stats/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	result := &domain.ZonalResult{
		AreaName:  "Maricunga",
		IndexUsed: domain.IndexNDWI,
		Stats: []domain.ClassStatistics{
			{ClassName: domain.LandClassWater, Median: 0.81234, AreaHa: 300},
			{ClassName: domain.LandClassSaltCrust, Median: -0.5, AreaHa: 700},
		},
		TotalArea: 1000,
	}

	prompt := BuildPrompt(result)

	assert.Contains(t, prompt, "expert in salt flats")
	assert.Contains(t, prompt, "NDWI index in Maricunga")
	assert.Contains(t, prompt, "- Water: 0.812 (300 ha)\n")
	assert.Contains(t, prompt, "- Salt-Crust: -0.500 (700 ha)\n")
	// (0.81234*300 - 0.5*700) / 1000
	assert.Contains(t, prompt, "Area-weighted median: -0.106\n")
	assert.Contains(t, prompt, "100 words")
}

func TestPromptHash(t *testing.T) {
	a := promptHash("prompt")
	b := promptHash("prompt")
	c := promptHash("other prompt")

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
