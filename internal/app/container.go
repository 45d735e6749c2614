package app

import (
	"context"
	"time"

	"hireall/internal/config"
	"hireall/internal/database"
	"hireall/internal/database/migration"
	"hireall/internal/database/seeder"
	dbpostgres "hireall/internal/database/postgres"
	"hireall/internal/infrastructure/cache"
	"hireall/internal/pipeline"
	"hireall/internal/pkg/jwt"
	"hireall/internal/repository"
	"hireall/internal/usecase"
)

// Container wires the service graph: storage, cache, auth, usecases.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Users       repository.UserRepository
	Jobs        repository.JobRepository
	Occupations repository.OccupationRepository
	Resumes     repository.ResumeRepository
	Stats       repository.StatsRepository

	AuthUC   usecase.AuthUsecase
	JobUC    usecase.JobUsecase
	ResumeUC usecase.ResumeUsecase
	StatusUC usecase.StatusUsecase

	Batch *pipeline.BatchPipeline
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis),
		JWT:    jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL),
	}

	c.Users = repository.NewPostgresUserRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Occupations = repository.NewPostgresOccupationRepository(db)
	c.Resumes = repository.NewPostgresResumeRepository(db)
	c.Stats = repository.NewPostgresStatsRepository(db)

	c.AuthUC = usecase.NewAuthUsecase(c.Users, c.JWT)
	c.JobUC = usecase.NewJobUsecase(c.Jobs, c.Occupations, c.Cache)
	c.ResumeUC = usecase.NewResumeUsecase(c.Resumes)
	c.StatusUC = usecase.NewStatusUsecase(c.Stats, c.Cache)

	c.Batch = pipeline.NewBatchPipeline(c.JobUC, c.Cache, cfg.Scraper)

	// The seeders may have refreshed the taxonomy, so cached classifications
	// from a previous run can be stale.
	_ = c.Cache.DeleteByPattern(ctx, "classify:*")

	return c, nil
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
