package models

import "time"

// Statistics summarizes a symbol over an inclusive date range.
//
// The averages are arithmetic means over every matching record, not a page.
//
// swagger:model Statistics
type Statistics struct {
	StartDate              time.Time
	EndDate                time.Time
	Symbol                 string
	AverageDailyOpenPrice  float64
	AverageDailyClosePrice float64
	AverageDailyVolume     float64
}
