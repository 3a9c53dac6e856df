package models

import "fmt"

// BloodType is the ABO group in the 1..4 numbering used by the catalog
// exclusion flags (1 = O, 2 = A, 3 = B, 4 = AB).
type BloodType int

const (
	BloodTypeO  BloodType = 1
	BloodTypeA  BloodType = 2
	BloodTypeB  BloodType = 3
	BloodTypeAB BloodType = 4
)

func (b BloodType) Valid() bool {
	return b >= BloodTypeO && b <= BloodTypeAB
}

// ForbiddenColumn returns the products column holding the exclusion flag
// for b. The mapping is a closed switch so no caller input ever reaches a
// column name.
func (b BloodType) ForbiddenColumn() (string, error) {
	switch b {
	case BloodTypeO:
		return "blood_1_forbidden", nil
	case BloodTypeA:
		return "blood_2_forbidden", nil
	case BloodTypeB:
		return "blood_3_forbidden", nil
	case BloodTypeAB:
		return "blood_4_forbidden", nil
	default:
		return "", fmt.Errorf("unknown blood type %d", int(b))
	}
}
