package service

import (
	"context"

	"cortado/internal/cache"
	"cortado/internal/dto"
	"cortado/internal/repository"
)

// DashboardService serves the read-only projections the dashboard consumes:
// the joined ratings table, aggregate statistics and the restaurant
// leaderboard. It never writes.
type DashboardService interface {
	ListRatings(ctx context.Context) ([]dto.RatingRow, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

type dashboardService struct {
	ratingRepo repository.RatingRepository
	cache      *cache.RatingsCache
}

func NewDashboardService(ratingRepo repository.RatingRepository, ratingsCache *cache.RatingsCache) DashboardService {
	return &dashboardService{
		ratingRepo: ratingRepo,
		cache:      ratingsCache,
	}
}

// ListRatings returns one row per rating with all display attributes,
// newest first. The projection is cached; a cache miss or an unreachable
// cache falls through to the store.
func (s *dashboardService) ListRatings(ctx context.Context) ([]dto.RatingRow, error) {
	if rows, ok := s.cache.GetRows(ctx); ok {
		return rows, nil
	}

	rows, err := s.ratingRepo.ListRows()
	if err != nil {
		return nil, err
	}

	s.cache.SetRows(ctx, rows)
	return rows, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	return s.ratingRepo.Stats()
}

func (s *dashboardService) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	return s.ratingRepo.Leaderboard()
}
