package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CategoryServiceServer 分类服务
type CategoryServiceServer interface {
	GetCategory(context.Context, *IDRequest) (*Category, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	CreateCategory(context.Context, *CreateCategoryRequest) (*IDResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*IDResponse, error)
	DeleteCategory(context.Context, *IDRequest) (*StatusResponse, error)
	ChangeCategoryPosition(context.Context, *ChangePositionRequest) (*Category, error)
	UpsertCategoryTranslation(context.Context, *UpsertCategoryTranslationRequest) (*IDResponse, error)
	DeleteCategoryTranslation(context.Context, *IDRequest) (*StatusResponse, error)
}

// UnimplementedCategoryServiceServer 嵌入后未实现的方法返回Unimplemented
type UnimplementedCategoryServiceServer struct{}

func (UnimplementedCategoryServiceServer) GetCategory(context.Context, *IDRequest) (*Category, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCategory not implemented")
}
func (UnimplementedCategoryServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedCategoryServiceServer) CreateCategory(context.Context, *CreateCategoryRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCategory not implemented")
}
func (UnimplementedCategoryServiceServer) UpdateCategory(context.Context, *UpdateCategoryRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCategory not implemented")
}
func (UnimplementedCategoryServiceServer) DeleteCategory(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategory not implemented")
}
func (UnimplementedCategoryServiceServer) ChangeCategoryPosition(context.Context, *ChangePositionRequest) (*Category, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeCategoryPosition not implemented")
}
func (UnimplementedCategoryServiceServer) UpsertCategoryTranslation(context.Context, *UpsertCategoryTranslationRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertCategoryTranslation not implemented")
}
func (UnimplementedCategoryServiceServer) DeleteCategoryTranslation(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategoryTranslation not implemented")
}

// CategoryService_ServiceDesc 分类服务描述
var CategoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CategoryServiceName, "GetCategory", CategoryServiceServer.GetCategory),
		unary(CategoryServiceName, "ListCategories", CategoryServiceServer.ListCategories),
		unary(CategoryServiceName, "CreateCategory", CategoryServiceServer.CreateCategory),
		unary(CategoryServiceName, "UpdateCategory", CategoryServiceServer.UpdateCategory),
		unary(CategoryServiceName, "DeleteCategory", CategoryServiceServer.DeleteCategory),
		unary(CategoryServiceName, "ChangeCategoryPosition", CategoryServiceServer.ChangeCategoryPosition),
		unary(CategoryServiceName, "UpsertCategoryTranslation", CategoryServiceServer.UpsertCategoryTranslation),
		unary(CategoryServiceName, "DeleteCategoryTranslation", CategoryServiceServer.DeleteCategoryTranslation),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/category.json",
}

// RegisterCategoryServiceServer 注册分类服务
func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryService_ServiceDesc, srv)
}

// CategoryServiceClient 分类服务客户端
type CategoryServiceClient interface {
	GetCategory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Category, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*IDResponse, error)
	UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteCategory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	ChangeCategoryPosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Category, error)
	UpsertCategoryTranslation(ctx context.Context, in *UpsertCategoryTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteCategoryTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
}

type categoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCategoryServiceClient 创建分类服务客户端
func NewCategoryServiceClient(cc grpc.ClientConnInterface) CategoryServiceClient {
	return &categoryServiceClient{cc: cc}
}

func (c *categoryServiceClient) GetCategory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Category, error) {
	return invoke[Category](ctx, c.cc, CategoryServiceName, "GetCategory", in, opts)
}

func (c *categoryServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, CategoryServiceName, "ListCategories", in, opts)
}

func (c *categoryServiceClient) CreateCategory(ctx context.Context, in *CreateCategoryRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, CategoryServiceName, "CreateCategory", in, opts)
}

func (c *categoryServiceClient) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, CategoryServiceName, "UpdateCategory", in, opts)
}

func (c *categoryServiceClient) DeleteCategory(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, CategoryServiceName, "DeleteCategory", in, opts)
}

func (c *categoryServiceClient) ChangeCategoryPosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Category, error) {
	return invoke[Category](ctx, c.cc, CategoryServiceName, "ChangeCategoryPosition", in, opts)
}

func (c *categoryServiceClient) UpsertCategoryTranslation(ctx context.Context, in *UpsertCategoryTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, CategoryServiceName, "UpsertCategoryTranslation", in, opts)
}

func (c *categoryServiceClient) DeleteCategoryTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, CategoryServiceName, "DeleteCategoryTranslation", in, opts)
}
