package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"ClinicRecords/auth"
	"ClinicRecords/config"
	"ClinicRecords/controllers"
	"ClinicRecords/jobs"
	"ClinicRecords/logger"
	"ClinicRecords/migrations"
	"ClinicRecords/routes"
	"ClinicRecords/server"
	"ClinicRecords/services"
	"ClinicRecords/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	startServer   = server.Start
	runMigrations = migrations.Run
	isTest        = false
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic records API server",
		SilenceUsage: true,
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the database indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context())
		},
	})
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

/*
* Build the configured store
* Mongo connections are released by the returned close func
* REDIS_URL puts a read cache in front of whichever store was built
 */
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	var st store.Store
	closers := []func(){}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("using the in-memory store, records are lost on exit")
		st = store.NewMemoryStore()
	default:
		client, err := store.Connect(ctx, cfg.MongoURI, cfg.StoreTimeout)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { disconnect(client) })
		st = store.NewMongoStore(client.Database(cfg.MongoDatabase), cfg.StoreTimeout)
	}

	if cfg.RedisURL != "" {
		rdb, err := store.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		st = store.NewCachedStore(st, store.NewRedisCache(rdb, cfg.CacheTTL))
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("redis read cache enabled")
	}
	return st, closeAll, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	keys, err := services.NewKeyGenerator(cfg.KeyStrategy, time.Now)
	if err != nil {
		closeStore()
		return err
	}

	accounts := services.NewAccounts(st, auth.NewBcrypt(bcrypt.DefaultCost))
	appointments := services.NewAppointments(st, keys, time.Now)
	reports := services.NewReports(st, keys)
	handler := controllers.NewHandler(accounts, appointments, reports, auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL))
	scheduler := jobs.NewScheduler(accounts, appointments)

	options := server.GetDefaultOptions()
	options.WebServerPort = cfg.Port
	options.CORSOrigins = cfg.CORSOrigins
	options.JobsEnabled = cfg.JobsEnabled && !isTest
	options.JobsHandler = func() {
		if err := scheduler.StartDailyScheduler(cfg.AgendaSchedule); err != nil {
			log.Error().Err(err).Str("schedule", cfg.AgendaSchedule).Msg("agenda job not scheduled")
		}
	}
	options.WebServerPreHandler = func(r *gin.Engine) {
		routes.Routes(r, handler)
	}
	options.OnShutdown = []func(){scheduler.Stop, closeStore}

	return startServer(options)
}

func migrate(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver == "memory" {
		log.Info().Msg("memory store has no indexes to migrate")
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := store.Connect(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		return err
	}
	defer disconnect(client)
	return runMigrations(ctx, client.Database(cfg.MongoDatabase))
}
