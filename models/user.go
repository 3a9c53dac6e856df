package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotRecommendedFood struct {
	Title string `json:"title"`
}

// UserProfile carries the body metrics a daily norm is computed from:
// height in cm, age in years, weights in kg. Ranges are enforced by
// binding before any service sees the value.
type UserProfile struct {
	Height        float64   `json:"height" binding:"required,gte=100,lte=250"`
	Age           int       `json:"age" binding:"required,gte=18,lte=100"`
	CurrentWeight float64   `json:"currentWeight" binding:"required,gte=20,lte=500"`
	DesiredWeight float64   `json:"desiredWeight" binding:"required,gte=20,lte=500"`
	BloodType     BloodType `json:"bloodType" binding:"required,bloodtype"`
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	Height        float64
	Age           int
	CurrentWeight float64
	DesiredWeight float64
	BloodType     BloodType

	DailyRate  int
	NotRecFood datatypes.JSONSlice[NotRecommendedFood]

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile returns the stored body metrics.
func (u User) Profile() UserProfile {
	return UserProfile{
		Height:        u.Height,
		Age:           u.Age,
		CurrentWeight: u.CurrentWeight,
		DesiredWeight: u.DesiredWeight,
		BloodType:     u.BloodType,
	}
}

// ProfileProjection is the user record without identity or credential fields.
type ProfileProjection struct {
	ID            uuid.UUID            `json:"id"`
	Height        float64              `json:"height"`
	Age           int                  `json:"age"`
	CurrentWeight float64              `json:"currentWeight"`
	DesiredWeight float64              `json:"desiredWeight"`
	BloodType     BloodType            `json:"bloodType"`
	DailyRate     int                  `json:"dailyRate"`
	NotRecFood    []NotRecommendedFood `json:"notRecFood"`
}

func (u User) Projection() ProfileProjection {
	notRec := make([]NotRecommendedFood, 0, len(u.NotRecFood))
	notRec = append(notRec, u.NotRecFood...)
	return ProfileProjection{
		ID:            u.ID,
		Height:        u.Height,
		Age:           u.Age,
		CurrentWeight: u.CurrentWeight,
		DesiredWeight: u.DesiredWeight,
		BloodType:     u.BloodType,
		DailyRate:     u.DailyRate,
		NotRecFood:    notRec,
	}
}
