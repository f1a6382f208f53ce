package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KirkDiggler/raid-planner/internal/config"
	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/handlers/planner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/progress"
	"github.com/KirkDiggler/raid-planner/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-planner/internal/redis"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearset"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ledger"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ranking"
	"github.com/KirkDiggler/raid-planner/internal/repositories/schedules"
)

// app owns the connections behind the planner handler
type app struct {
	Handler *v1alpha1.Handler

	redis redis.Client
	db    *gorm.DB
	log   *zap.Logger
}

func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{log: log}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	redisClient, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout(),
		UseTLS:      cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	a.redis = redisClient
	if err := redis.Ping(ctx, redisClient, cfg.Redis.DialTimeout()); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Endpoint, err)
	}

	db, err := gearcatalog.OpenDB(gearcatalog.DBConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
		Debug:           cfg.Database.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	a.db = db

	catalogStore, err := gearcatalog.NewGorm(&gearcatalog.GormConfig{DB: db, AutoMigrate: cfg.Database.AutoMigrate})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	if cfg.Catalog.SeedPath != "" {
		count, err := gearcatalog.SeedFromFile(ctx, catalogStore, cfg.Catalog.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Info("catalog seeded", zap.String("path", cfg.Catalog.SeedPath), zap.Int("pieces", count))
	}
	catalogRepo, err := gearcatalog.NewCached(&gearcatalog.CachedConfig{
		Repository: catalogStore,
		TTL:        cfg.Catalog.CacheTTL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger repository: %w", err)
	}
	gearSetRepo, err := gearset.NewRedis(&gearset.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create gear set repository: %w", err)
	}
	rankingRepo, err := ranking.NewRedis(&ranking.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking repository: %w", err)
	}
	scheduleRepo, err := schedules.NewRedis(&schedules.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule repository: %w", err)
	}

	eng, err := engine.New(&engine.Config{MaxOccurrences: cfg.Schedule.MaxOccurrences})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	progressService, err := progress.NewOrchestrator(&progress.Config{
		Engine:      eng,
		LedgerRepo:  ledgerRepo,
		GearSetRepo: gearSetRepo,
		RankingRepo: rankingRepo,
		CatalogRepo: catalogRepo,
		Logger:      log.Named("progress"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create progress orchestrator: %w", err)
	}

	calendarService, err := calendar.NewOrchestrator(&calendar.Config{
		Engine:       eng,
		ScheduleRepo: scheduleRepo,
		IDGenerator:  idgen.NewUUID("sched"),
		Logger:       log.Named("calendar"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ProgressService: progressService,
		CalendarService: calendarService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create planner handler: %w", err)
	}
	a.Handler = handler

	ok = true
	return a, nil
}

// Close releases the redis pool and the catalog database
func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Warn("failed to close catalog database", zap.Error(err))
			}
		}
	}
}
