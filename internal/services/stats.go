package services

import (
	"time"

	"github.com/oscahub/osca-backend/internal/models"
)

// Stats are the display counters derived from a member's availment history.
// Recomputed on demand, never persisted.
type Stats struct {
	TotalReceived    int     `json:"totalReceived"`
	TotalAmount      float64 `json:"totalAmount"`
	PendingRequests  int     `json:"pendingRequests"`
	RejectedRequests int     `json:"rejectedRequests"`
	ThisYearTotal    float64 `json:"thisYearTotal"`
}

// ComputeStats derives counters from the approved availments and outstanding
// requests. An approved record counts toward ThisYearTotal when its effective
// date (approval date if recorded, else submission date) falls in the calendar
// year of now.
func ComputeStats(approved, requests []*models.Availment, now time.Time) *Stats {
	stats := &Stats{}
	year := now.Year()

	for _, a := range approved {
		stats.TotalReceived++
		stats.TotalAmount += a.Amount
		if a.EffectiveDate().Year() == year {
			stats.ThisYearTotal += a.Amount
		}
	}

	for _, r := range requests {
		switch {
		case models.StatusEquals(r.Status, models.StatusPending):
			stats.PendingRequests++
		case models.StatusEquals(r.Status, models.StatusRejected):
			stats.RejectedRequests++
		}
	}

	return stats
}
