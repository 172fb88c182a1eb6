package main

import (
	"context"
	"net/http"
	"net/http/pprof"
	"os"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmdx00/lifecycle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"connectsphere/core"
	"connectsphere/pkg/resources"
	"connectsphere/pkg/servers"
)

func main() {
	name, version := "connectsphere", "1.0"

	// 1. Config + logger
	resources.LoadConfig()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().
		Str("service", name).Str("version", version).Logger().
		Hook(resources.NewZerologHook(name, version))

	ctx := log.Logger.WithContext(context.Background())

	startupLogger := log.Ctx(ctx).With().Str("stage", "startup").Str("component", "main").Logger()
	shutdownLogger := log.Ctx(ctx).With().Str("stage", "shut down").Str("component", "main").Logger()

	startupLogger.Info().Msg("application starting up")
	defer shutdownLogger.Info().Msg("application stopped")

	// 2. Telemetry
	stopTracerFn, err := resources.CreateTracer(ctx)
	if err != nil {
		shutdownLogger.Fatal().Err(err).Msg("unable to setup tracer")
	}
	defer func() {
		stopCtx, cancelFn := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelFn()
		_ = stopTracerFn(stopCtx)
	}()

	// 3. Core wiring: the directory and store are the in-process
	// contract every consumer surface reads from; the archive mirror is
	// optional and fire-and-forget.
	directory := core.NewDirectory(core.ConnectedUsers())

	var (
		repo      core.Repository
		storeOpts []core.StoreOption
		closables []resources.Closable
	)

	if viper.GetBool("ARCHIVE_ENABLED") {
		pool, err := resources.CreateDatabaseConnectionPool(ctx)
		if err != nil {
			shutdownLogger.Fatal().Err(err).Msg("unable to create database connection pool")
		}

		repo = core.NewRepository(pool)
		storeOpts = append(storeOpts, core.WithArchiver(repo))
		closables = append(closables, pool)
	}

	store := core.NewEventStore(storeOpts...)
	handlers := core.NewHandlers(store, directory, repo)

	// 4. Servers

	gin.SetMode(gin.ReleaseMode)

	restHandler := gin.New()
	restHandler.Use(gin.Recovery())
	restHandler.Use(resources.TracerMiddleware(name))
	restHandler.Use(resources.MeterMiddleware(name))

	restHandler.POST("/events", handlers.PostEvents)
	restHandler.GET("/events", handlers.GetEvents)
	restHandler.GET("/events/:id", handlers.GetEvent)
	restHandler.DELETE("/events/:id", handlers.DeleteEvent)
	restHandler.POST("/events/:id/respond", handlers.PostResponse)
	restHandler.GET("/archive/events/:id", handlers.GetArchivedEvent)
	restHandler.GET("/templates", handlers.GetTemplates)
	restHandler.GET("/contacts", handlers.GetContacts)

	debugHandler := http.NewServeMux()
	debugHandler.HandleFunc("/debug/pprof/", pprof.Index)
	debugHandler.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	debugHandler.HandleFunc("/debug/pprof/profile", pprof.Profile)
	debugHandler.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	debugHandler.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// 5. Lifecycle

	app := lifecycle.NewApp(
		lifecycle.WithName(name),
		lifecycle.WithVersion(version),
		lifecycle.WithSignal(syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT),
	)

	app.Attach(servers.BuildBaseServer(closables...))
	app.Attach(servers.BuildHttpServer("debug-server", &http.Server{
		Addr:    viper.GetString("DEBUG_HOST") + ":" + viper.GetString("DEBUG_PORT"),
		Handler: debugHandler,
	}))
	app.Attach(servers.BuildHttpServer("rest-server", &http.Server{
		Addr:    viper.GetString("HTTP_HOST") + ":" + viper.GetString("HTTP_PORT"),
		Handler: restHandler,
	}))

	startupLogger.Info().Msg("application running")

	err = app.Run()
	if err != nil {
		shutdownLogger.Error().Err(err).Msg("runtime error")
	}
}
