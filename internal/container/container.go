package container

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"tmdb/browser/internal/client"
	"tmdb/browser/internal/config"
	"tmdb/browser/internal/repository"
	"tmdb/browser/internal/state"
	"tmdb/browser/internal/view"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.TMDBClient
	Repository repository.MovieRepository
	Holder     *state.Holder
	View       *view.View
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	tmdbClient := client.NewTMDBClient(cfg.TMDB)
	movieRepo := repository.NewMovieRepository(tmdbClient)
	holder := state.NewHolder(movieRepo)
	v := view.New(holder, cfg.TMDB.ImageBaseURL, os.Stdin, os.Stdout)

	return &Container{
		Config:     cfg,
		Client:     tmdbClient,
		Repository: movieRepo,
		Holder:     holder,
		View:       v,
	}, nil
}

// Run drives the view loop until it exits or a shutdown signal arrives
func (c *Container) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return c.View.Run(ctx)
	})

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			log.Infof("Received signal %v, shutting down", sig)
			cancel()
			return nil
		}
	})

	return g.Wait()
}
