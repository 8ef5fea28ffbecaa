package zonal

import "github.com/salar-zonal-stats/internal/domain"

// response is the characteristic index value of a land class: the centre of the
// synthetic distribution and its full width.
type response struct {
	base   float64
	spread float64
}

type indexResponse struct {
	classes map[domain.LandClass]response
	other   response
}

// Indices missing from this table fall back to a random low-magnitude base.
var responses = map[domain.SpectralIndex]indexResponse{
	domain.IndexNDWI: {
		classes: map[domain.LandClass]response{
			domain.LandClassWater:            {base: 0.815, spread: 0.08},
			domain.LandClassVegetatedWetland: {base: 0.210, spread: 0.05},
		},
		other: response{base: -0.480, spread: 0.12},
	},
	domain.IndexNDVI: {
		classes: map[domain.LandClass]response{
			domain.LandClassVegetatedWetland: {base: 0.710, spread: 0.10},
			domain.LandClassWater:            {base: -0.250, spread: 0.04},
		},
		other: response{base: 0.080, spread: 0.03},
	},
	domain.IndexNDSI: {
		classes: map[domain.LandClass]response{
			domain.LandClassSaltCrust: {base: 0.840, spread: 0.06},
		},
		other: response{base: 0.015, spread: 0.02},
	},
	domain.IndexBSI: {
		classes: map[domain.LandClass]response{
			domain.LandClassBareGround: {base: 0.620, spread: 0.05},
			domain.LandClassSaltCrust:  {base: 0.410, spread: 0.08},
		},
		other: response{base: -0.150, spread: 0.03},
	},
}

const (
	fallbackBaseMin = -0.2
	fallbackBaseMax = 0.2
	fallbackSpread  = 0.04
)

// lookup returns the response for the pair and whether it came from the table.
func lookup(index domain.SpectralIndex, class domain.LandClass) (response, bool) {
	ir, ok := responses[index]
	if !ok {
		return response{}, false
	}
	if r, ok := ir.classes[class]; ok {
		return r, true
	}
	return ir.other, true
}
