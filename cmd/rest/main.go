package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"expert-session-be/internal/bootstrap"
	"expert-session-be/internal/config"
	"expert-session-be/internal/server"
	"expert-session-be/internal/tracer"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap: %v", err)
	}
	defer container.Logger.Sync()
	defer container.Close()

	// 3. Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg, container.Logger)
	defer shutdownTracer(context.Background())

	// 4. Start Background Services
	if err := container.ActivityService.Consume(ctx); err != nil {
		container.Logger.Error("BOOTSTRAP", "Failed to start activity consumer", map[string]interface{}{"error": err.Error()})
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go container.SessionRoomHub.Run(hubCtx)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		container.Logger.Info("HTTP", "Shutting down server", nil)
		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("HTTP", "Shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("HTTP", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
