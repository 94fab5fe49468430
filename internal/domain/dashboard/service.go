package dashboard

import "context"

type DashboardService interface {
	GetAdminStats(ctx context.Context) (*AdminStatsResponse, error)
}

// RatingProvider supplies the company-wide average performance rating.
// There is no performance-review subsystem yet; StaticRatingProvider stands
// in until one exists.
type RatingProvider interface {
	AverageRating(ctx context.Context) (float64, error)
}

type StaticRatingProvider struct {
	Rating float64
}

func (p StaticRatingProvider) AverageRating(ctx context.Context) (float64, error) {
	return p.Rating, nil
}
