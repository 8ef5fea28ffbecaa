package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandClasses_Order(t *testing.T) {
	classes := LandClasses()

	assert.Equal(t, []LandClass{
		LandClassWater,
		LandClassVegetatedWetland,
		LandClassSaltCrust,
		LandClassBareGround,
	}, classes)

	// Изменение копии не затрагивает перечисление
	classes[0] = "Mutated"
	assert.Equal(t, LandClassWater, LandClasses()[0])
}

func TestSpectralIndex_IsKnown(t *testing.T) {
	for _, idx := range SpectralIndices() {
		assert.True(t, idx.IsKnown(), "index %s should be known", idx)
	}
	assert.False(t, SpectralIndex("EVI").IsKnown())
	assert.False(t, SpectralIndex("ndwi").IsKnown())
}

func TestTargetClass(t *testing.T) {
	tests := []struct {
		name     string
		index    SpectralIndex
		expected LandClass
		found    bool
	}{
		{name: "NDWI highlights water", index: IndexNDWI, expected: LandClassWater, found: true},
		{name: "NDVI highlights wetlands", index: IndexNDVI, expected: LandClassVegetatedWetland, found: true},
		{name: "NDSI highlights salt crust", index: IndexNDSI, expected: LandClassSaltCrust, found: true},
		{name: "Albedo highlights salt crust", index: IndexAlbedo, expected: LandClassSaltCrust, found: true},
		{name: "BSI highlights bare ground", index: IndexBSI, expected: LandClassBareGround, found: true},
		{name: "classification has no target", index: IndexClassification, found: false},
		{name: "unknown index has no target", index: SpectralIndex("EVI"), found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := TargetClass(tt.index)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, class)
		})
	}
}

func sampleResult() *ZonalResult {
	return &ZonalResult{
		AreaName:  "Maricunga",
		IndexUsed: IndexNDWI,
		Stats: []ClassStatistics{
			{ClassName: LandClassWater, Median: 0.8, AreaHa: 300},
			{ClassName: LandClassVegetatedWetland, Median: 0.2, AreaHa: 100},
			{ClassName: LandClassSaltCrust, Median: -0.5, AreaHa: 400},
			{ClassName: LandClassBareGround, Median: -0.4, AreaHa: 200},
		},
		TotalArea: 1000,
	}
}

func TestZonalResult_ClassStats(t *testing.T) {
	r := sampleResult()

	s, ok := r.ClassStats(LandClassSaltCrust)
	assert.True(t, ok)
	assert.Equal(t, 400, s.AreaHa)

	_, ok = r.ClassStats(LandClass("Snow"))
	assert.False(t, ok)
}

func TestZonalResult_AreaShare(t *testing.T) {
	r := sampleResult()

	assert.InDelta(t, 30.0, r.AreaShare(LandClassWater), 1e-9)
	assert.InDelta(t, 40.0, r.AreaShare(LandClassSaltCrust), 1e-9)
	assert.Equal(t, 0.0, r.AreaShare(LandClass("Snow")))

	empty := &ZonalResult{}
	assert.Equal(t, 0.0, empty.AreaShare(LandClassWater))
}

func TestZonalResult_WeightedMedian(t *testing.T) {
	r := sampleResult()

	// (0.8*300 + 0.2*100 - 0.5*400 - 0.4*200) / 1000
	assert.InDelta(t, -0.02, r.WeightedMedian(), 1e-9)
	assert.Equal(t, 0.0, (&ZonalResult{}).WeightedMedian())
}

func TestEnvironment_IsValid(t *testing.T) {
	for _, env := range Environments() {
		assert.True(t, env.IsValid())
	}
	assert.False(t, Environment("andino").IsValid())
	assert.False(t, Environment("").IsValid())
}
