package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Описание сервиса на well-known типах, без сгенерированного кода:
//
//	service ModelService {
//	  rpc GetWeights(google.protobuf.Empty) returns (google.protobuf.Struct);
//	}
const (
	ModelServiceName     = "aml.model.v1.ModelService"
	GetWeightsFullMethod = "/" + ModelServiceName + "/GetWeights"
)

// ModelServiceServer - серверная часть ModelService
type ModelServiceServer interface {
	GetWeights(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

var ModelServiceDesc = grpc.ServiceDesc{
	ServiceName: ModelServiceName,
	HandlerType: (*ModelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWeights",
			Handler:    getWeightsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aml/model/v1/model_service.proto",
}

func RegisterModelServiceServer(s grpc.ServiceRegistrar, srv ModelServiceServer) {
	s.RegisterService(&ModelServiceDesc, srv)
}

func getWeightsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelServiceServer).GetWeights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetWeightsFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelServiceServer).GetWeights(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ModelServiceClient - клиент ModelService
type ModelServiceClient interface {
	GetWeights(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type modelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewModelServiceClient(cc grpc.ClientConnInterface) ModelServiceClient {
	return &modelServiceClient{cc: cc}
}

func (c *modelServiceClient) GetWeights(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetWeightsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
