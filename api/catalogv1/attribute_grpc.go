package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AttributeServiceServer 属性服务
type AttributeServiceServer interface {
	GetAttribute(context.Context, *IDRequest) (*Attribute, error)
	ListAttributes(context.Context, *ListAttributesRequest) (*ListAttributesResponse, error)
	CreateAttribute(context.Context, *CreateAttributeRequest) (*IDResponse, error)
	UpdateAttribute(context.Context, *UpdateAttributeRequest) (*IDResponse, error)
	DeleteAttribute(context.Context, *IDRequest) (*StatusResponse, error)
	ChangeAttributePosition(context.Context, *ChangePositionRequest) (*Attribute, error)
	UpsertAttributeTranslation(context.Context, *UpsertAttributeTranslationRequest) (*IDResponse, error)
	DeleteAttributeTranslation(context.Context, *IDRequest) (*StatusResponse, error)
}

type UnimplementedAttributeServiceServer struct{}

func (UnimplementedAttributeServiceServer) GetAttribute(context.Context, *IDRequest) (*Attribute, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAttribute not implemented")
}
func (UnimplementedAttributeServiceServer) ListAttributes(context.Context, *ListAttributesRequest) (*ListAttributesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAttributes not implemented")
}
func (UnimplementedAttributeServiceServer) CreateAttribute(context.Context, *CreateAttributeRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAttribute not implemented")
}
func (UnimplementedAttributeServiceServer) UpdateAttribute(context.Context, *UpdateAttributeRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateAttribute not implemented")
}
func (UnimplementedAttributeServiceServer) DeleteAttribute(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAttribute not implemented")
}
func (UnimplementedAttributeServiceServer) ChangeAttributePosition(context.Context, *ChangePositionRequest) (*Attribute, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeAttributePosition not implemented")
}
func (UnimplementedAttributeServiceServer) UpsertAttributeTranslation(context.Context, *UpsertAttributeTranslationRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertAttributeTranslation not implemented")
}
func (UnimplementedAttributeServiceServer) DeleteAttributeTranslation(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAttributeTranslation not implemented")
}

var AttributeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AttributeServiceName,
	HandlerType: (*AttributeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AttributeServiceName, "GetAttribute", AttributeServiceServer.GetAttribute),
		unary(AttributeServiceName, "ListAttributes", AttributeServiceServer.ListAttributes),
		unary(AttributeServiceName, "CreateAttribute", AttributeServiceServer.CreateAttribute),
		unary(AttributeServiceName, "UpdateAttribute", AttributeServiceServer.UpdateAttribute),
		unary(AttributeServiceName, "DeleteAttribute", AttributeServiceServer.DeleteAttribute),
		unary(AttributeServiceName, "ChangeAttributePosition", AttributeServiceServer.ChangeAttributePosition),
		unary(AttributeServiceName, "UpsertAttributeTranslation", AttributeServiceServer.UpsertAttributeTranslation),
		unary(AttributeServiceName, "DeleteAttributeTranslation", AttributeServiceServer.DeleteAttributeTranslation),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/attribute.json",
}

func RegisterAttributeServiceServer(s grpc.ServiceRegistrar, srv AttributeServiceServer) {
	s.RegisterService(&AttributeService_ServiceDesc, srv)
}

type AttributeServiceClient interface {
	GetAttribute(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Attribute, error)
	ListAttributes(ctx context.Context, in *ListAttributesRequest, opts ...grpc.CallOption) (*ListAttributesResponse, error)
	CreateAttribute(ctx context.Context, in *CreateAttributeRequest, opts ...grpc.CallOption) (*IDResponse, error)
	UpdateAttribute(ctx context.Context, in *UpdateAttributeRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteAttribute(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	ChangeAttributePosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Attribute, error)
	UpsertAttributeTranslation(ctx context.Context, in *UpsertAttributeTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteAttributeTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
}

type attributeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAttributeServiceClient(cc grpc.ClientConnInterface) AttributeServiceClient {
	return &attributeServiceClient{cc: cc}
}

func (c *attributeServiceClient) GetAttribute(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Attribute, error) {
	return invoke[Attribute](ctx, c.cc, AttributeServiceName, "GetAttribute", in, opts)
}

func (c *attributeServiceClient) ListAttributes(ctx context.Context, in *ListAttributesRequest, opts ...grpc.CallOption) (*ListAttributesResponse, error) {
	return invoke[ListAttributesResponse](ctx, c.cc, AttributeServiceName, "ListAttributes", in, opts)
}

func (c *attributeServiceClient) CreateAttribute(ctx context.Context, in *CreateAttributeRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, AttributeServiceName, "CreateAttribute", in, opts)
}

func (c *attributeServiceClient) UpdateAttribute(ctx context.Context, in *UpdateAttributeRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, AttributeServiceName, "UpdateAttribute", in, opts)
}

func (c *attributeServiceClient) DeleteAttribute(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, AttributeServiceName, "DeleteAttribute", in, opts)
}

func (c *attributeServiceClient) ChangeAttributePosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Attribute, error) {
	return invoke[Attribute](ctx, c.cc, AttributeServiceName, "ChangeAttributePosition", in, opts)
}

func (c *attributeServiceClient) UpsertAttributeTranslation(ctx context.Context, in *UpsertAttributeTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, AttributeServiceName, "UpsertAttributeTranslation", in, opts)
}

func (c *attributeServiceClient) DeleteAttributeTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, AttributeServiceName, "DeleteAttributeTranslation", in, opts)
}
