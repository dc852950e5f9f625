package repository

import (
	"context"

	"tmdb/browser/internal/client"
	"tmdb/browser/internal/domain"
)

type MovieRepository interface {
	GetPopular(ctx context.Context) ([]domain.Movie, error)
	GetDetail(ctx context.Context, id int) (*domain.Movie, error)
}

type movieRepository struct {
	client client.TMDBClient
}

func NewMovieRepository(client client.TMDBClient) MovieRepository {
	return &movieRepository{
		client: client,
	}
}

// GetPopular unwraps the results array from the popular-movies envelope.
func (r *movieRepository) GetPopular(ctx context.Context) ([]domain.Movie, error) {
	page, err := r.client.GetPopular(ctx)
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func (r *movieRepository) GetDetail(ctx context.Context, id int) (*domain.Movie, error) {
	return r.client.GetMovie(ctx, id)
}
