package models

// DaySummary is the calorie balance of one calendar day against the
// owner's committed daily rate.
type DaySummary struct {
	Date      string         `json:"date"`
	DailyRate int            `json:"dailyRate"`
	Consumed  int            `json:"consumed"`
	Left      int            `json:"left"`
	Percent   float64        `json:"percent"`
	Entries   []EatenProduct `json:"entries"`
}
