package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nimtoz/models"
	"nimtoz/utils"

	"go.uber.org/zap"
)

const statsCacheTTL = 5 * time.Minute

// GetBookingStats produces the 12-month dashboard series starting at
// reference's month. Each bucket counts bookings whose start date falls in
// that month: approved ones, and strictly pending ones (rejected bookings
// land in neither bucket). The series is recomputed from the aggregation on
// every call and cached briefly in Redis.
func (s *DefaultBookingService) GetBookingStats(ctx context.Context, reference time.Time) ([]models.MonthlyBookingStat, error) {
	logger := utils.GetLogger()

	windowStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 12, 0)
	cacheKey := fmt.Sprintf("bookingstats:%s", windowStart.Format("2006-01"))

	if s.StatsCache != nil {
		if cached, err := s.StatsCache.Get(ctx, cacheKey).Result(); err == nil {
			var stats []models.MonthlyBookingStat
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
		}
	}

	counts, err := s.Repo.MonthlyStatusCounts(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}

	stats := make([]models.MonthlyBookingStat, 0, 12)
	for i := 0; i < 12; i++ {
		month := windowStart.AddDate(0, i, 0)
		stat := models.MonthlyBookingStat{Month: month.Format("Jan")}
		for _, c := range counts {
			if c.Year != month.Year() || c.Month != month.Month() {
				continue
			}
			switch c.Status {
			case models.BookingStatusApproved:
				stat.Approved += c.Count
			case models.BookingStatusPending:
				stat.NotApproved += c.Count
			}
		}
		stats = append(stats, stat)
	}

	if s.StatsCache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.StatsCache.Set(ctx, cacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache booking stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}
