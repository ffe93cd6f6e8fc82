package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/neuroweather/neuroweather/internal/cache"
	"github.com/neuroweather/neuroweather/internal/location"
	"github.com/neuroweather/neuroweather/internal/weather"
)

// Scheduler periodically prunes expired cache entries and prewarms the
// forecast cache for the configured home cities.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     cache.Cache
	forecast  weather.Forecaster
	places    []location.Match
	interval  time.Duration
}

// New creates a new Scheduler.
func New(store cache.Cache, forecast weather.Forecaster, places []location.Match, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		store:     store,
		forecast:  forecast,
		places:    places,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running cache maintenance job")

		if n := s.store.Prune(); n > 0 {
			log.Printf("scheduler: pruned %d expired cache entries", n)
		}

		var wg sync.WaitGroup
		for _, place := range s.places {
			place := place
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.forecast.Hourly(ctx, place.Lat, place.Lon, weather.ForecastHorizonDays); err != nil {
					log.Printf("scheduler: prewarm failed for %s: %v", place.City, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed cache maintenance job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
