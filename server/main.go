// server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streamkit/stream-manager/server/api"
	"github.com/streamkit/stream-manager/server/cleanup"
	"github.com/streamkit/stream-manager/server/service"
	"github.com/streamkit/stream-manager/server/startgg"
	"github.com/streamkit/stream-manager/server/store"
	"github.com/streamkit/stream-manager/server/upload"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
	"github.com/streamkit/stream-manager/shared/cluster"
	"github.com/streamkit/stream-manager/shared/config"
	"github.com/streamkit/stream-manager/shared/mongodb"
	sharedredis "github.com/streamkit/stream-manager/shared/redis"
	"github.com/streamkit/stream-manager/shared/registry"
)

const serviceType = "stream-manager"

func main() {
	log.Println("Starting stream-manager service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()

	redisClient, err := sharedredis.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer redisClient.Close()

	sessionStore := store.NewSessionStore(mongoClient.Collection(cfg.SessionsCollection))
	teamStore := store.NewTeamStore(mongoClient.Collection(cfg.TeamsCollection))
	sessionCache := store.NewSessionCache(redisClient, cfg.SessionCacheTTL)

	uploadStore, err := upload.NewStore(cfg.UploadsDir, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	sessionService := service.NewSessionService(sessionStore, sessionCache)
	teamService := service.NewTeamService(teamStore)

	// Register this instance so replicas can agree on who runs the
	// singleton cleanup task.
	registrar := registry.NewRegistrar(redisClient, serviceType, registry.Options{
		ServiceIP:               cfg.ServiceIP,
		ServicePort:             cfg.ServicePort,
		HeartbeatInterval:       cfg.HeartbeatInterval,
		HeartbeatTTL:            cfg.HeartbeatTTL,
		RegistryCleanupInterval: cfg.RegistryCleanupInterval,
	})
	registrar.Start()
	defer registrar.Stop()

	registryClient := registry.NewClient(redisClient, cfg.HeartbeatTTL)
	assignment := cluster.NewAssignmentManager(registryClient, registrar, cfg.HeartbeatInterval)
	go assignment.Start()
	defer assignment.Stop()

	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()
	sweeper := cleanup.NewSweeper(uploadStore, assignment, cfg.UploadTTL, cfg.CleanupInterval, sessionStore, teamStore)
	go sweeper.Start(sweeperCtx)

	server := sharedapi.NewBaseServer(cfg.ListenAddr, cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout, nil)
	api.RegisterHealthRoute(server.Router)
	api.NewSessionHandler(sessionService, cfg.PublicBaseURL).RegisterRoutes(server.Router)
	api.NewTeamHandler(teamService).RegisterRoutes(server.Router)
	api.NewUploadHandler(uploadStore, cfg.UploadMaxBytes).RegisterRoutes(server.Router)
	api.NewStartGGHandler(startgg.NewClient(cfg.StartGGAPIToken)).RegisterRoutes(server.Router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: HTTP server shutdown failed: %v", err)
	}

	log.Println("stream-manager service stopped.")
}
