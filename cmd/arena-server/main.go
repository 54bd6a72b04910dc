package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"clash-arena/internal/server"
	"clash-arena/pkg/logger"
)

func main() {
	host := flag.String("host", "localhost", "Host to listen on")
	port := flag.Int("port", 8080, "Port to listen on")
	basePath := flag.String("basePath", ".", "Base path for data files")
	logLevel := flag.String("logLevel", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger.SetGlobalLogLevel(logger.ParseLevel(*logLevel))

	logsDir := filepath.Join(*basePath, "logs")
	if err := logger.InitializeFileLogging(logsDir); err != nil {
		log.Printf("Warning: failed to initialize file logging: %v", err)
	}

	srv := server.NewServer(*host, *port, *basePath)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Server.Info("shutting down server")

	if err := srv.Stop(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Server.Info("server stopped")
}
