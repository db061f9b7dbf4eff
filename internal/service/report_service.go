package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"time"

	"csatapi/internal/cache"
	apperrors "csatapi/internal/errors"
	"csatapi/internal/model"
	"csatapi/internal/repository"
)

const (
	day = 24 * time.Hour

	// distributionBuckets is the number of histogram buckets; bucket i counts
	// ratings in (i-1, i].
	distributionBuckets = 5
	// recentFeedbackLimit caps the recent-feedback listing.
	recentFeedbackLimit = 5

	reportCacheKey = "report:summary"
)

// reportWindows are the trailing spans behind the fixed report fields.
var reportWindows = [3]time.Duration{30 * day, 60 * day, 90 * day}

// RecentFeedback is the projection of a feedback entry exposed in the report.
// IP address and screenshot reference are deliberately absent: the listing
// only ever surfaces safe fields.
type RecentFeedback struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Rating      float64   `json:"rating"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report is the aggregate satisfaction view returned to the admin.
type Report struct {
	TotalAvgRating      float64          `json:"total_avg_rating"`
	AvgRatingLast30Days float64          `json:"avg_rating_last_30_days"`
	AvgRatingLast60Days float64          `json:"avg_rating_last_60_days"`
	AvgRatingLast90Days float64          `json:"avg_rating_last_90_days"`
	UniqueRatingCount   int64            `json:"unique_rating_count"`
	Distribution        map[string]int64 `json:"distribution"`
	RecentFeedback      []RecentFeedback `json:"recent_feedback"`
}

// ReportService computes aggregate satisfaction reports.
type ReportService interface {
	ComputeReport(ctx context.Context) (*Report, error)
}

type reportService struct {
	repo     repository.FeedbackRepository
	cache    *cache.Client
	cacheTTL time.Duration
	now      func() time.Time
}

// NewReportService creates a new report service. The cache is optional; a nil
// client disables caching.
func NewReportService(repo repository.FeedbackRepository, cache *cache.Client, cacheTTL time.Duration) ReportService {
	return &reportService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// ComputeReport reads the whole feedback store and aggregates it at the
// current instant. Store failures abort the computation: a zero-valued report
// is only ever the true aggregate of an empty store, never an error disguise.
func (s *reportService) ComputeReport(ctx context.Context) (*Report, error) {
	if data, _ := s.cache.Get(ctx, reportCacheKey); data != nil {
		var cached Report
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.ErrCancelled
		}
		return nil, apperrors.ErrStoreUnavailable
	}

	report := buildReport(entries, s.now())

	if payload, err := json.Marshal(report); err == nil {
		_ = s.cache.Set(ctx, reportCacheKey, payload, s.cacheTTL)
	}

	return report, nil
}

// buildReport is the pure aggregation core: a function of the entries and the
// reference instant only.
func buildReport(entries []model.Feedback, now time.Time) *Report {
	return &Report{
		TotalAvgRating:      averageRating(entries),
		AvgRatingLast30Days: averageRatingSince(entries, now.Add(-reportWindows[0])),
		AvgRatingLast60Days: averageRatingSince(entries, now.Add(-reportWindows[1])),
		AvgRatingLast90Days: averageRatingSince(entries, now.Add(-reportWindows[2])),
		UniqueRatingCount:   uniqueRaterCount(entries),
		Distribution:        ratingDistribution(entries, distributionBuckets),
		RecentFeedback:      recentFeedback(entries, recentFeedbackLimit),
	}
}

// averageRating returns the mean rating rounded to 2 decimals, or 0.0 for an
// empty set.
func averageRating(entries []model.Feedback) float64 {
	if len(entries) == 0 {
		return 0.0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Rating
	}
	return round2(sum / float64(len(entries)))
}

// averageRatingSince returns the mean rating over entries created at or after
// cutoff, or 0.0 when the window is empty. The cutoff is inclusive, so a
// larger window always covers a superset of a smaller one.
func averageRatingSince(entries []model.Feedback, cutoff time.Time) float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			sum += e.Rating
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return round2(sum / float64(count))
}

// uniqueRaterCount counts distinct submitter emails over the entire store.
func uniqueRaterCount(entries []model.Feedback) int64 {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Email] = struct{}{}
	}
	return int64(len(seen))
}

// ratingDistribution partitions entries into buckets keyed "1".."n" where
// bucket i counts ratings in the open-low, closed-high interval (i-1, i].
// A rating of exactly 1.0 lands in "1" and exactly 5.0 in "5"; ratings at or
// below zero, or above n, land in no bucket.
func ratingDistribution(entries []model.Feedback, buckets int) map[string]int64 {
	dist := make(map[string]int64, buckets)
	for i := 1; i <= buckets; i++ {
		var count int64
		for _, e := range entries {
			if e.Rating > float64(i-1) && e.Rating <= float64(i) {
				count++
			}
		}
		dist[strconv.Itoa(i)] = count
	}
	return dist
}

// recentFeedback returns up to limit entries, newest first. Entries sharing a
// CreatedAt are ordered by descending ID, so the later insertion wins.
func recentFeedback(entries []model.Feedback, limit int) []RecentFeedback {
	sorted := make([]model.Feedback, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}

	recent := make([]RecentFeedback, 0, limit)
	for _, e := range sorted[:limit] {
		recent = append(recent, RecentFeedback{
			ID:          e.ID,
			Name:        e.Name,
			Email:       e.Email,
			Rating:      e.Rating,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return recent
}

// round2 rounds half away from zero to 2 decimal digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
