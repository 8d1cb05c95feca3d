package weather

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/skycast/skycast-go/internal/model"
)

// Aggregator resolves current conditions for a batch of saved locations.
type Aggregator struct {
	provider Provider
}

// NewAggregator creates an Aggregator backed by the given provider.
func NewAggregator(provider Provider) *Aggregator {
	return &Aggregator{provider: provider}
}

// Fetch geocodes each location and fetches its current conditions, running
// all per-location pipelines concurrently. Results preserve the input order.
// If any single pipeline fails the whole batch fails and partial results are
// discarded; there is no best-effort mode.
func (a *Aggregator) Fetch(ctx context.Context, locations []model.Location) ([]model.WeatherObservation, error) {
	observations := make([]model.WeatherObservation, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			coord, err := a.provider.Geocode(ctx, loc.Name)
			if err != nil {
				return err
			}

			cond, err := a.provider.Current(ctx, coord)
			if err != nil {
				return err
			}

			// Report the name as stored, not as the provider spells it.
			observations[i] = model.WeatherObservation{
				Location:    loc.Name,
				Temperature: cond.Temperature,
				Condition:   cond.Description,
				Icon:        cond.Icon,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return observations, nil
}
