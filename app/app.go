package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prospect-pain-engine/api"
	"prospect-pain-engine/cache"
	"prospect-pain-engine/config"
	"prospect-pain-engine/database"
	"prospect-pain-engine/pain"
	"prospect-pain-engine/realtime"
)

// App represents the main application
type App struct {
	config    *config.Config
	db        *database.Database
	statsDB   *database.StatsDB
	redis     *cache.RedisClient
	repo      *database.Repository
	broker    *realtime.Broker
	hub       *realtime.Hub
	engine    *pain.Engine
	scorer    *Scorer
	scheduler *ReviewScheduler
	apiServer *api.Server
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

// Start starts the application
func (a *App) Start() error {
	// 1. Database Connection
	fmt.Println("🗄️  Connecting to database...")

	db, err := database.Connect(
		a.config.DatabaseHost,
		a.config.DatabasePort,
		a.config.DatabaseName,
		a.config.DatabaseUser,
		a.config.DatabasePassword,
	)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.db = db

	a.repo = database.NewRepository(a.db)
	if err := a.repo.InitSchema(); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	// Separate raw connection for the dashboard aggregate queries
	statsDB, err := database.NewStatsConnection(
		a.config.DatabaseHost,
		a.config.DatabasePort,
		a.config.DatabaseName,
		a.config.DatabaseUser,
		a.config.DatabasePassword,
	)
	if err != nil {
		return fmt.Errorf("stats connection failed: %w", err)
	}
	a.statsDB = statsDB

	// 2. Redis Connection
	fmt.Println("🧠 Connecting to Redis...")
	redisClient := cache.NewRedisClient(
		a.config.RedisHost,
		a.config.RedisPort,
		a.config.RedisPassword,
	)
	if redisClient == nil {
		fmt.Println("⚠️  Redis connection failed. Caching disabled.")
	} else {
		a.redis = redisClient
	}
	assessments := cache.NewAssessmentCache(a.redis)

	// 3. Realtime feeds
	a.broker = realtime.NewBroker()
	go a.broker.Run()
	a.hub = realtime.NewHub()

	// 4. Pain engine
	tables, err := config.LoadTables(a.config.TablesFile)
	if err != nil {
		log.Printf("⚠️  Lookup table override failed, using defaults: %v", err)
	}
	a.engine = pain.NewWithTables(a.config.Engine, tables)
	a.scorer = NewScorer(a.engine, a.repo, assessments, a.broker, a.hub)

	// 5. Review scheduler
	if a.config.Scheduler.Enabled {
		a.scheduler = NewReviewScheduler(
			a.scorer,
			a.repo,
			a.broker,
			time.Duration(a.config.Scheduler.IntervalMinutes)*time.Minute,
			a.config.Scheduler.Workers,
			a.config.Scheduler.BatchSize,
		)
		go a.scheduler.Start()
	}

	// 6. HTTP API
	a.apiServer = api.NewServer(a.repo, a.statsDB, assessments, a.broker, a.hub, a.scorer)
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.apiServer.Start(a.config.APIPort)
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("🛑 Shutting down on %s", sig)
		a.shutdown()
		return nil
	case err := <-errCh:
		a.shutdown()
		return fmt.Errorf("api server error: %w", err)
	}
}

// shutdown stops background work and closes connections
func (a *App) shutdown() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("⚠️  Redis close error: %v", err)
		}
	}
	if a.statsDB != nil {
		if err := a.statsDB.Close(); err != nil {
			log.Printf("⚠️  Stats connection close error: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("⚠️  Database close error: %v", err)
		}
	}
}
