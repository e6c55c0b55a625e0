package app

import (
	"context"
	"log"
	"time"

	"career-os/internal/config"
	"career-os/internal/curation"
	"career-os/internal/database"
	"career-os/internal/database/migration"
	dbpostgres "career-os/internal/database/postgres"
	"career-os/internal/domain/market"
	"career-os/internal/domain/roadmap"
	"career-os/internal/infrastructure/cache"
	"career-os/internal/infrastructure/ollama"
	"career-os/internal/repository"
	"career-os/internal/usecase"
	"career-os/internal/ws"
)

// Container holds the wired application graph. Everything downstream of
// Config is constructed once here and shared.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Submissions usecase.SubmissionUsecase
	Roles       usecase.RoleUsecase
	Roadmaps    usecase.RoadmapUsecase
	Plans       usecase.CareerPlanUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Logger: logger}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	table, err := market.Load(cfg.Market.DataPath)
	if err != nil {
		logger.Printf("Market table load failed, starting with empty table | path=%s error=%v",
			cfg.Market.DataPath, err)
		table = market.Table{}
	} else {
		logger.Printf("Market table loaded | path=%s roles=%d", cfg.Market.DataPath, table.Len())
	}

	var gen roadmap.PlanGenerator
	if client := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout, logger); client != nil {
		gen = client
	}
	synth := roadmap.NewSynthesizer(gen, logger)

	hub := ws.NewHub(logger)

	metricsRepo := repository.NewPostgresUserMetricsRepository(db)
	submissions := usecase.NewSubmissionUsecase(metricsRepo, logger)
	roles := usecase.NewRoleUsecase(table, curation.NewCatalog(), redisCache, logger)
	roadmaps := usecase.NewRoadmapUsecase(synth)
	plans := usecase.NewCareerPlanUsecase(roles, roadmaps, redisCache, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Cache:       redisCache,
		Hub:         hub,
		Submissions: submissions,
		Roles:       roles,
		Roadmaps:    roadmaps,
		Plans:       plans,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
