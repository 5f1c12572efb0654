package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/config"
	"github.com/KannamTejaswi311/NutriTrack/internal/db"
	"github.com/KannamTejaswi311/NutriTrack/internal/handler"
	"github.com/KannamTejaswi311/NutriTrack/internal/logger"
	"github.com/KannamTejaswi311/NutriTrack/internal/migrations"
	"github.com/KannamTejaswi311/NutriTrack/internal/rabbitmq"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/mongorepo"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/postgres"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository/redisrepo"
	"github.com/KannamTejaswi311/NutriTrack/internal/server"
	"github.com/KannamTejaswi311/NutriTrack/internal/service"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Sugar().Fatalf("failed to load config: %s", err.Error())
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, closeStore := connectStore(ctx, cfg, logger)
	defer closeStore()

	rdb, err := db.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to redis: %s", err.Error())
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Successfully connected to Redis")
	}

	opts := service.Options{CacheTTL: cfg.Redis.TTL}
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.New(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to rabbitmq: %s", err.Error())
		}
		defer mq.Close()
		opts.Publisher = mq
		logger.Info("Successfully connected to RabbitMQ")
	}

	repos := repository.New(store, redisrepo.New(rdb))
	services := service.New(logger, repos, opts)

	if cfg.App.Seed {
		seeded, err := services.Post.SeedIfEmpty(ctx)
		if err != nil {
			logger.Sugar().Panicf("failed to seed posts: %s", err.Error())
		}
		if seeded {
			logger.Info("Seeded welcome posts")
		}
	}

	handlers := handler.New(services, logger, handler.Options{
		ClientOrigin: cfg.Client.Origin,
		JWTSecret:    cfg.JWT.Secret,
	})

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           cfg.App.Port,
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Sugar().Infof("Server started on port %s using %s store", cfg.App.Port, cfg.Store.Driver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

// connectStore opens the backend selected by store.driver and returns a
// func that releases it.
func connectStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*repository.Store, func()) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, database, err := db.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to mongo: %s", err.Error())
		}
		logger.Info("Successfully connected to MongoDB")

		return mongorepo.New(database), func() {
			_ = client.Disconnect(context.Background())
		}
	default:
		if cfg.Postgres.Migrate {
			if err := migrations.Up(cfg.Postgres.URL); err != nil {
				logger.Sugar().Panicf("failed to apply migrations: %s", err.Error())
			}
			logger.Info("Migrations applied")
		}

		pool, err := db.ConnectPostgres(ctx, cfg.Postgres.URL)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")

		return postgres.New(pool), pool.Close
	}
}
