// Package main provides the entry point for the Otakuverse client data layer.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/otakuverse/otakuverse-client/internal/di"
	"github.com/otakuverse/otakuverse-client/internal/di/providers"
	"github.com/otakuverse/otakuverse-client/internal/logger"
	"github.com/otakuverse/otakuverse-client/internal/session"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap client: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	sessions := do.MustInvoke[*session.Service](injector)
	if sessions.IsAuthenticated() {
		log.Info("Session restored", "user_id", sessions.UserID())
	} else {
		log.Info("No stored session, starting logged out")
	}

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down client gracefully...")

	// Shutdown all services in reverse order
	// The DI container handles shutdown order automatically
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// Database needs explicit shutdown since it uses a wrapper type
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		log.Info("Closing local store...")
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close local store", "error", err)
		} else {
			log.Info("Local store closed successfully")
		}
	}
}
