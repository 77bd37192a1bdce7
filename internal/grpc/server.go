package grpc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/model"
	"bank-aml-pod/internal/models"
	"bank-aml-pod/internal/services"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ModelGRPCServer отдает веса модели пода по gRPC
type ModelGRPCServer struct {
	podService services.PodService
}

var _ ModelServiceServer = (*ModelGRPCServer)(nil)

func NewModelGRPCServer(podService services.PodService) *ModelGRPCServer {
	return &ModelGRPCServer{podService: podService}
}

// GetWeights возвращает coef, intercept, feature_names и bank_name в виде Struct
func (s *ModelGRPCServer) GetWeights(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	weights, err := s.podService.GetWeights(ctx)
	if errors.Is(err, model.ErrModelNotTrained) {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	if err != nil {
		log.Printf("Error getting weights: %v", err)
		return nil, status.Errorf(codes.Internal, "Failed to get weights: %v", err)
	}

	result, err := WeightsToStruct(weights)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to encode weights: %v", err)
	}
	return result, nil
}

// WeightsToStruct переводит веса в google.protobuf.Struct
func WeightsToStruct(weights *models.Weights) (*structpb.Struct, error) {
	coef := make([]interface{}, len(weights.Coef))
	for i, row := range weights.Coef {
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		coef[i] = values
	}

	intercept := make([]interface{}, len(weights.Intercept))
	for i, v := range weights.Intercept {
		intercept[i] = v
	}

	names := make([]interface{}, len(weights.FeatureNames))
	for i, name := range weights.FeatureNames {
		names[i] = name
	}

	return structpb.NewStruct(map[string]interface{}{
		"coef":          coef,
		"intercept":     intercept,
		"feature_names": names,
		"bank_name":     weights.BankName,
	})
}

// NewServer создает gRPC сервер с зарегистрированным ModelService
func NewServer(modelServer *ModelGRPCServer) *grpc.Server {
	s := grpc.NewServer()
	RegisterModelServiceServer(s, modelServer)

	// Включаем reflection API для grpcurl и других инструментов
	reflection.Register(s)
	return s
}

// StartGRPCServer запускает gRPC сервер; блокируется до остановки
func StartGRPCServer(cfg *config.Config, s *grpc.Server) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	log.Printf("gRPC server listening on port %d", cfg.Server.GRPCPort)
	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}
