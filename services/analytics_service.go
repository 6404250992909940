// file: services/analytics_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

type TimeRange string

const (
	RangeThisWeek   TimeRange = "this_week"
	RangeLast30Days TimeRange = "last_30_days"
)

const analyticsCacheTTL = 5 * time.Minute

type AnalyticsResponse struct {
	Current          int64     `json:"current"`
	Previous         int64     `json:"previous"`
	PercentageChange float64   `json:"percentage_change"`
	TimeRange        TimeRange `json:"time_range"`
}

type StatusOverview struct {
	Analytics map[string]struct {
		Count int64 `json:"count"`
	} `json:"analytics"`
}

type AnalyticsService struct {
	DB    *gorm.DB
	cache Cache

	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB, cache Cache) *AnalyticsService {
	return &AnalyticsService{DB: db, cache: cache, now: time.Now}
}

// dateRanges computes the current window and the preceding window of
// equal length used for the percentage delta.
func (s *AnalyticsService) dateRanges(timeRange TimeRange) (currentStart, currentEnd, previousStart time.Time) {
	now := s.now()
	if timeRange == RangeThisWeek {
		y, m, d := now.Date()
		currentStart = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
		previousStart = currentStart.AddDate(0, 0, -7)
	} else {
		currentStart = now.AddDate(0, 0, -30)
		previousStart = currentStart.AddDate(0, 0, -30)
	}
	return currentStart, now, previousStart
}

func percentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := (float64(current-previous) / float64(previous)) * 100
	return math.Round(change*100) / 100
}

func (s *AnalyticsService) getAnalytics(ctx context.Context, timeRange TimeRange, status models.ChallengeStatus) (*AnalyticsResponse, error) {
	if timeRange == "" {
		timeRange = RangeLast30Days
	}

	statusKey := "total"
	if status != "" {
		statusKey = string(status)
	}
	cacheKey := fmt.Sprintf("analytics:challenges:%s:%s", timeRange, statusKey)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var resp AnalyticsResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	currentStart, currentEnd, previousStart := s.dateRanges(timeRange)

	count := func(from, to time.Time) (int64, error) {
		query := s.DB.Model(&models.Challenge{}).
			Where("created_at >= ? AND created_at < ?", from, to)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		var n int64
		err := query.Count(&n).Error
		return n, err
	}

	current, err := count(currentStart, currentEnd)
	if err != nil {
		return nil, err
	}
	previous, err := count(previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	resp := &AnalyticsResponse{
		Current:          current,
		Previous:         previous,
		PercentageChange: percentageChange(current, previous),
		TimeRange:        timeRange,
	}
	if raw, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, cacheKey, string(raw), analyticsCacheTTL)
	}
	return resp, nil
}

func (s *AnalyticsService) GetTotalChallenges(ctx context.Context, timeRange TimeRange) (*AnalyticsResponse, error) {
	return s.getAnalytics(ctx, timeRange, "")
}

func (s *AnalyticsService) GetOpenChallenges(ctx context.Context, timeRange TimeRange) (*AnalyticsResponse, error) {
	return s.getAnalytics(ctx, timeRange, models.ChallengeStatusOpen)
}

func (s *AnalyticsService) GetOngoingChallenges(ctx context.Context, timeRange TimeRange) (*AnalyticsResponse, error) {
	return s.getAnalytics(ctx, timeRange, models.ChallengeStatusOngoing)
}

func (s *AnalyticsService) GetCompletedChallenges(ctx context.Context, timeRange TimeRange) (*AnalyticsResponse, error) {
	return s.getAnalytics(ctx, timeRange, models.ChallengeStatusCompleted)
}

func (s *AnalyticsService) GetStatusOverview(ctx context.Context) (*StatusOverview, error) {
	cacheKey := "analytics:challenges:overview"
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var overview StatusOverview
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return &overview, nil
		}
	}

	type row struct {
		Status models.ChallengeStatus
		Count  int64
	}
	var rows []row
	err := s.DB.Model(&models.Challenge{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overview := &StatusOverview{Analytics: map[string]struct {
		Count int64 `json:"count"`
	}{
		"open":      {},
		"ongoing":   {},
		"completed": {},
	}}
	for _, r := range rows {
		if _, tracked := overview.Analytics[string(r.Status)]; tracked {
			overview.Analytics[string(r.Status)] = struct {
				Count int64 `json:"count"`
			}{Count: r.Count}
		}
	}

	if raw, err := json.Marshal(overview); err == nil {
		s.cache.Set(ctx, cacheKey, string(raw), analyticsCacheTTL)
	}
	return overview, nil
}
