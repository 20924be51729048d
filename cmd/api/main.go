package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/sped/diario-import/internal/bootstrap"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not loaded: %v", err)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	server, err := bootstrap.NewHTTPServer(cfg, log)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
