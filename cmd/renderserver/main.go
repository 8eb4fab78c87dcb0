// Command renderserver runs the optional batch rendering service: a
// fixed worker pool rendering many independent documents concurrently,
// fronted by a small HTTP API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"genpdf/logging"
	"genpdf/service"
)

func main() {
	logger, err := logging.New(logging.Config{Level: logging.LevelInfo, Format: "console"})
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	storage := service.NewLocalStorage(envOrDefault("OUTPUT_DIR", "./output"))
	pool := service.NewPool(4, storage, logger)
	pool.Start()

	router := service.NewRouter(pool, logger)
	engine := gin.New()
	engine.Use(gin.Recovery())
	router.Register(engine)

	srv := &http.Server{Addr: ":" + envOrDefault("PORT", "8080"), Handler: engine}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
	pool.Stop(ctx)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
