// shared/api/server.go
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// BaseServer wraps an http.Server with the router and middleware the
// stream-manager process uses. Overlay pages poll from OBS browser
// sources on a ~1s interval, so CORS is wide open.
type BaseServer struct {
	Router *mux.Router
	Server *http.Server
	Logger *log.Logger
}

func NewBaseServer(addr string, readTimeout, writeTimeout time.Duration, logger *log.Logger) *BaseServer {
	if logger == nil {
		logger = log.Default()
	}
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  120 * time.Second,
	}

	return &BaseServer{
		Router: router,
		Server: server,
		Logger: logger,
	}
}

func (bs *BaseServer) Start() error {
	bs.Logger.Printf("Starting HTTP server on %s...", bs.Server.Addr)
	if err := bs.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

func (bs *BaseServer) Shutdown(ctx context.Context) error {
	bs.Logger.Println("Shutting down HTTP server...")
	return bs.Server.Shutdown(ctx)
}
