package modelservice

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bank-aml-pod/docs" // Swagger docs
	"bank-aml-pod/internal/api/rest"
	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/grpc"
)

// StartModelService запускает под банка: REST API и gRPC сервер весов
func StartModelService() {
	cfg := config.Load()

	deps, err := InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	handlers := rest.NewHandlers(deps.PodService)
	router := rest.SetupRouter(handlers)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Printf("AML Model Service (%s) starting on port %d", cfg.Model.BankName, cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	grpcServer := grpc.NewServer(grpc.NewModelGRPCServer(deps.PodService))
	go func() {
		log.Printf("Starting gRPC server on port %d...", cfg.Server.GRPCPort)
		if err := grpc.StartGRPCServer(cfg, grpcServer); err != nil {
			log.Fatalf("Failed to start gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down services...")
	grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Services exited")
}
