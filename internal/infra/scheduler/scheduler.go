// Package scheduler runs recurring background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pindrop/config"
	"pindrop/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRetireInterval = time.Minute

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	GroupUsecase usecase.GroupUsecase
}

// New builds the job scheduler and registers the group retirement sweep.
// Jobs start with the application and stop on shutdown.
func New(params Params) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	interval := defaultRetireInterval
	if params.Config.Scheduler != nil && params.Config.Scheduler.RetireInterval > 0 {
		interval = params.Config.Scheduler.RetireInterval
	}

	logger := params.Logger

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func(ctx context.Context) {
			retired, err := params.GroupUsecase.RetireExpiredGroups(ctx, time.Now())
			if err != nil {
				logger.Error("group retirement sweep failed", slog.Any("error", err))

				return
			}
			if retired > 0 {
				logger.Info("retired expired groups", slog.Int64("count", retired))
			}
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register retirement job")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting scheduler", slog.Duration("retire_interval", interval))
			sched.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping scheduler")

			return sched.Shutdown()
		},
	})

	return sched, nil
}

// Module provides the scheduler FX module. Invoked eagerly so the sweep runs
// even though nothing else depends on the scheduler.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Invoke(New),
)
