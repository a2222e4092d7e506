package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oscahub/osca-backend/internal/models"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	thisYear := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	approved := []*models.Availment{
		{Amount: 100, Status: models.StatusApproved, ApprovedAt: &thisYear, CreatedAt: lastYear},
		{Amount: 200, Status: models.StatusApproved, ApprovedAt: &lastYear, CreatedAt: lastYear},
	}
	requests := []*models.Availment{
		{Status: models.StatusPending},
		{Status: models.StatusRejected},
	}

	stats := ComputeStats(approved, requests, now)

	assert.Equal(t, 2, stats.TotalReceived)
	assert.Equal(t, 300.0, stats.TotalAmount)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 1, stats.RejectedRequests)
	assert.Equal(t, 100.0, stats.ThisYearTotal)
}

func TestComputeStatsEffectiveDateFallsBackToCreation(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// No approval date recorded: the submission date decides the year bucket.
	approved := []*models.Availment{
		{Amount: 50, Status: models.StatusApproved, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Amount: 75, Status: models.StatusApproved, CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	stats := ComputeStats(approved, nil, now)

	assert.Equal(t, 2, stats.TotalReceived)
	assert.Equal(t, 125.0, stats.TotalAmount)
	assert.Equal(t, 50.0, stats.ThisYearTotal)
}

func TestComputeStatsStatusCaseInsensitive(t *testing.T) {
	requests := []*models.Availment{
		{Status: "Pending"},
		{Status: "REJECTED"},
		{Status: "rejected"},
	}

	stats := ComputeStats(nil, requests, time.Now())

	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 2, stats.RejectedRequests)
	assert.Zero(t, stats.TotalReceived)
}
