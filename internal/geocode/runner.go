package geocode

import (
	"context"
	"time"

	"go.uber.org/zap"

	"petparrk/internal/repository"
)

// Options control a geocoding run.
type Options struct {
	// DryRun looks addresses up without writing coordinates.
	DryRun bool
	// OnlyMissing skips vets that already have both coordinates.
	OnlyMissing bool
}

// Summary counts the outcome of a run.
type Summary struct {
	Total    int `json:"total"`
	Skipped  int `json:"skipped"`
	Found    int `json:"found"`
	NotFound int `json:"not_found"`
	Failed   int `json:"failed"`
}

// Runner geocodes every active vet one request at a time, pausing between requests.
// There is no retry; a failed lookup is logged and counted.
type Runner struct {
	vets  repository.VetRepository
	geo   Geocoder
	log   *zap.Logger
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a Runner.
func NewRunner(vets repository.VetRepository, geo Geocoder, log *zap.Logger, delay time.Duration) *Runner {
	return &Runner{
		vets:  vets,
		geo:   geo,
		log:   log.With(zap.String("component", "geocoder")),
		delay: delay,
		sleep: sleepContext,
	}
}

// Run processes the active vets. It stops early only when ctx is done or the vet list cannot be read.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary

	vets, err := r.vets.ListActive(ctx)
	if err != nil {
		return sum, err
	}
	sum.Total = len(vets)

	requested := false
	for _, v := range vets {
		if opts.OnlyMissing && v.Latitude != nil && v.Longitude != nil {
			sum.Skipped++
			continue
		}

		if requested {
			if err := r.sleep(ctx, r.delay); err != nil {
				return sum, err
			}
		}
		requested = true

		address := v.FullAddress()
		pt, err := r.geo.Lookup(ctx, address)
		if err != nil {
			if ctx.Err() != nil {
				return sum, ctx.Err()
			}
			sum.Failed++
			r.log.Warn("geocode_failed", zap.String("vet", v.Name), zap.String("address", address), zap.Error(err))
			continue
		}
		if pt == nil {
			sum.NotFound++
			r.log.Info("geocode_not_found", zap.String("vet", v.Name), zap.String("address", address))
			continue
		}

		if !opts.DryRun {
			if err := r.vets.UpdateCoordinates(ctx, v.ID, pt.Lat, pt.Lon); err != nil {
				sum.Failed++
				r.log.Error("geocode_update_failed", zap.String("vet", v.Name), zap.Error(err))
				continue
			}
		}
		sum.Found++
		r.log.Info("geocode_found",
			zap.String("vet", v.Name),
			zap.Float64("lat", pt.Lat),
			zap.Float64("lon", pt.Lon),
			zap.Bool("dry_run", opts.DryRun),
		)
	}

	r.log.Info("geocode_done",
		zap.Int("total", sum.Total),
		zap.Int("skipped", sum.Skipped),
		zap.Int("found", sum.Found),
		zap.Int("not_found", sum.NotFound),
		zap.Int("failed", sum.Failed),
	)
	return sum, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
