package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HealthServiceServer 应用与依赖健康检查
// 标准grpc.health.v1另行注册，这里返回依赖明细
type HealthServiceServer interface {
	CheckAppHealth(context.Context, *Empty) (*AppHealthResponse, error)
	CheckAppConnections(context.Context, *Empty) (*ConnectionsResponse, error)
}

type UnimplementedHealthServiceServer struct{}

func (UnimplementedHealthServiceServer) CheckAppHealth(context.Context, *Empty) (*AppHealthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAppHealth not implemented")
}
func (UnimplementedHealthServiceServer) CheckAppConnections(context.Context, *Empty) (*ConnectionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAppConnections not implemented")
}

var HealthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: HealthServiceName,
	HandlerType: (*HealthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(HealthServiceName, "CheckAppHealth", HealthServiceServer.CheckAppHealth),
		unary(HealthServiceName, "CheckAppConnections", HealthServiceServer.CheckAppConnections),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/health.json",
}

func RegisterHealthServiceServer(s grpc.ServiceRegistrar, srv HealthServiceServer) {
	s.RegisterService(&HealthService_ServiceDesc, srv)
}

type HealthServiceClient interface {
	CheckAppHealth(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AppHealthResponse, error)
	CheckAppConnections(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ConnectionsResponse, error)
}

type healthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHealthServiceClient(cc grpc.ClientConnInterface) HealthServiceClient {
	return &healthServiceClient{cc: cc}
}

func (c *healthServiceClient) CheckAppHealth(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AppHealthResponse, error) {
	return invoke[AppHealthResponse](ctx, c.cc, HealthServiceName, "CheckAppHealth", in, opts)
}

func (c *healthServiceClient) CheckAppConnections(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ConnectionsResponse, error) {
	return invoke[ConnectionsResponse](ctx, c.cc, HealthServiceName, "CheckAppConnections", in, opts)
}
