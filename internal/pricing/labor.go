package pricing

import "fmt"

// Complexity selects the labor throughput used for the installation
// estimate.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// ParseComplexity maps a request string to a Complexity. Empty input
// defaults to moderate; anything else outside the closed set is an error.
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(s) {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return Complexity(s), nil
	case "":
		return ComplexityModerate, nil
	}
	return "", fmt.Errorf("unknown complexity %q", s)
}

// LaborRates carries the installation labor model: a flat hourly rate and an
// hours-per-square-foot figure keyed by complexity. The floor area is taken
// from the Decking-category line item when present, otherwise
// DefaultAreaSqft.
type LaborRates struct {
	HourlyRate           float64
	SimpleHoursPerSqft   float64
	ModerateHoursPerSqft float64
	ComplexHoursPerSqft  float64
	DefaultAreaSqft      float64
}

func DefaultLaborRates() LaborRates {
	return LaborRates{
		HourlyRate:           65,
		SimpleHoursPerSqft:   0.5,
		ModerateHoursPerSqft: 0.75,
		ComplexHoursPerSqft:  1.0,
		DefaultAreaSqft:      200,
	}
}

func (r LaborRates) hoursPerSqft(c Complexity) float64 {
	switch c {
	case ComplexitySimple:
		return r.SimpleHoursPerSqft
	case ComplexityComplex:
		return r.ComplexHoursPerSqft
	default:
		return r.ModerateHoursPerSqft
	}
}
