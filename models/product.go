package models

import (
	"encoding/json"
	"strings"
)

// Product is a catalog entry. The catalog is curated elsewhere; this
// service only reads it.
type Product struct {
	ID         uint    `gorm:"primaryKey"`
	Categories string  `gorm:"not null"`
	Weight     float64 `gorm:"not null"` // reference portion, grams
	Title      string  `gorm:"not null"`
	Calories   float64 `gorm:"not null"` // kcal per 100 g

	Blood1Forbidden bool `gorm:"column:blood_1_forbidden;not null;default:false"`
	Blood2Forbidden bool `gorm:"column:blood_2_forbidden;not null;default:false"`
	Blood3Forbidden bool `gorm:"column:blood_3_forbidden;not null;default:false"`
	Blood4Forbidden bool `gorm:"column:blood_4_forbidden;not null;default:false"`
}

// TitleKey is the comparison form of a product title: trimmed and
// lower-cased. Lookups compare keys for equality, never as patterns.
// It mirrors TitleKeyExpr, so rows written by other tools match too.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// TitleKeyExpr computes TitleKey in SQL. It backs the title lookup index.
const TitleKeyExpr = "lower(trim(title))"

// ForbiddenFor reports whether the product is not recommended for b.
func (p Product) ForbiddenFor(b BloodType) bool {
	switch b {
	case BloodTypeO:
		return p.Blood1Forbidden
	case BloodTypeA:
		return p.Blood2Forbidden
	case BloodTypeB:
		return p.Blood3Forbidden
	case BloodTypeAB:
		return p.Blood4Forbidden
	default:
		return false
	}
}

// GroupBloodNotAllowed returns the exclusion flags indexed by blood type - 1.
func (p Product) GroupBloodNotAllowed() [4]bool {
	return [4]bool{p.Blood1Forbidden, p.Blood2Forbidden, p.Blood3Forbidden, p.Blood4Forbidden}
}

// SetForbidden sets the exclusion flag for b. Unknown blood types are ignored.
func (p *Product) SetForbidden(b BloodType, forbidden bool) {
	switch b {
	case BloodTypeO:
		p.Blood1Forbidden = forbidden
	case BloodTypeA:
		p.Blood2Forbidden = forbidden
	case BloodTypeB:
		p.Blood3Forbidden = forbidden
	case BloodTypeAB:
		p.Blood4Forbidden = forbidden
	}
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                   uint    `json:"id"`
		Categories           string  `json:"categories"`
		Weight               float64 `json:"weight"`
		Title                string  `json:"title"`
		Calories             float64 `json:"calories"`
		GroupBloodNotAllowed [4]bool `json:"groupBloodNotAllowed"`
	}{
		ID:                   p.ID,
		Categories:           p.Categories,
		Weight:               p.Weight,
		Title:                p.Title,
		Calories:             p.Calories,
		GroupBloodNotAllowed: p.GroupBloodNotAllowed(),
	})
}
