package utils

import (
	"math"

	"nutrilog/models"
)

// NormPolicy holds the coefficients of the daily calorie norm:
//
//	norm = WeightFactor*currentWeight + HeightFactor*height - AgeFactor*age
//	       + Offset - DeficitFactor*(currentWeight - desiredWeight)
type NormPolicy struct {
	WeightFactor  float64 `yaml:"weight_factor"`
	HeightFactor  float64 `yaml:"height_factor"`
	AgeFactor     float64 `yaml:"age_factor"`
	Offset        float64 `yaml:"offset"`
	DeficitFactor float64 `yaml:"deficit_factor"`
}

// DefaultNormPolicy is Mifflin-St Jeor (female constant) with a 10 kcal/kg
// deficit toward the desired weight.
func DefaultNormPolicy() NormPolicy {
	return NormPolicy{
		WeightFactor:  10,
		HeightFactor:  6.25,
		AgeFactor:     5,
		Offset:        -161,
		DeficitFactor: 10,
	}
}

// DailyNorm returns the rounded daily calorie allowance for p, never negative.
// p is expected to be range-checked already.
func (np NormPolicy) DailyNorm(p models.UserProfile) int {
	norm := np.WeightFactor*p.CurrentWeight +
		np.HeightFactor*p.Height -
		np.AgeFactor*float64(p.Age) +
		np.Offset -
		np.DeficitFactor*(p.CurrentWeight-p.DesiredWeight)
	if norm < 0 {
		return 0
	}
	return int(math.Round(norm))
}

// MaxEntryWeight is the largest weight, in grams, a single entry may record.
const MaxEntryWeight = 100000

// EntryCalories scales a per-100 g calorie value to weight grams. ok is false
// when the rounded result is not finite or does not fit in an int32.
func EntryCalories(caloriesPer100g, weight float64) (calories int, ok bool) {
	v := math.Round(caloriesPer100g * weight / 100)
	if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

// Percent returns consumed/target clamped to [0, 1]; 0 when there is no target.
func Percent(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
