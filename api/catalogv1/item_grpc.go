package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ItemServiceServer 商品服务（含图片、规格与价格）
type ItemServiceServer interface {
	GetItem(context.Context, *GetItemRequest) (*Item, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*IDResponse, error)
	UpdateItem(context.Context, *UpdateItemRequest) (*IDResponse, error)
	DeleteItem(context.Context, *IDRequest) (*StatusResponse, error)
	ChangeItemPosition(context.Context, *ChangePositionRequest) (*Item, error)
	UpsertItemTranslation(context.Context, *UpsertItemTranslationRequest) (*IDResponse, error)
	DeleteItemTranslation(context.Context, *IDRequest) (*StatusResponse, error)
	AddImage(context.Context, *AddImageRequest) (*Image, error)
	RemoveImage(context.Context, *IDRequest) (*StatusResponse, error)
	ChangeImagePosition(context.Context, *ChangePositionRequest) (*Image, error)
	AddVariant(context.Context, *AddVariantRequest) (*Variant, error)
	RemoveVariant(context.Context, *IDRequest) (*StatusResponse, error)
	UpsertVariantTranslation(context.Context, *UpsertVariantTranslationRequest) (*IDResponse, error)
	AddVariantPrice(context.Context, *AddVariantPriceRequest) (*Price, error)
	RemoveVariantPrice(context.Context, *IDRequest) (*StatusResponse, error)
	AddBasePrice(context.Context, *AddBasePriceRequest) (*Price, error)
	RemoveBasePrice(context.Context, *IDRequest) (*StatusResponse, error)
}

type UnimplementedItemServiceServer struct{}

func (UnimplementedItemServiceServer) GetItem(context.Context, *GetItemRequest) (*Item, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}
func (UnimplementedItemServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedItemServiceServer) CreateItem(context.Context, *CreateItemRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateItem not implemented")
}
func (UnimplementedItemServiceServer) UpdateItem(context.Context, *UpdateItemRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateItem not implemented")
}
func (UnimplementedItemServiceServer) DeleteItem(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteItem not implemented")
}
func (UnimplementedItemServiceServer) ChangeItemPosition(context.Context, *ChangePositionRequest) (*Item, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeItemPosition not implemented")
}
func (UnimplementedItemServiceServer) UpsertItemTranslation(context.Context, *UpsertItemTranslationRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertItemTranslation not implemented")
}
func (UnimplementedItemServiceServer) DeleteItemTranslation(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteItemTranslation not implemented")
}
func (UnimplementedItemServiceServer) AddImage(context.Context, *AddImageRequest) (*Image, error) {
	return nil, status.Error(codes.Unimplemented, "method AddImage not implemented")
}
func (UnimplementedItemServiceServer) RemoveImage(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveImage not implemented")
}
func (UnimplementedItemServiceServer) ChangeImagePosition(context.Context, *ChangePositionRequest) (*Image, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeImagePosition not implemented")
}
func (UnimplementedItemServiceServer) AddVariant(context.Context, *AddVariantRequest) (*Variant, error) {
	return nil, status.Error(codes.Unimplemented, "method AddVariant not implemented")
}
func (UnimplementedItemServiceServer) RemoveVariant(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveVariant not implemented")
}
func (UnimplementedItemServiceServer) UpsertVariantTranslation(context.Context, *UpsertVariantTranslationRequest) (*IDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertVariantTranslation not implemented")
}
func (UnimplementedItemServiceServer) AddVariantPrice(context.Context, *AddVariantPriceRequest) (*Price, error) {
	return nil, status.Error(codes.Unimplemented, "method AddVariantPrice not implemented")
}
func (UnimplementedItemServiceServer) RemoveVariantPrice(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveVariantPrice not implemented")
}
func (UnimplementedItemServiceServer) AddBasePrice(context.Context, *AddBasePriceRequest) (*Price, error) {
	return nil, status.Error(codes.Unimplemented, "method AddBasePrice not implemented")
}
func (UnimplementedItemServiceServer) RemoveBasePrice(context.Context, *IDRequest) (*StatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBasePrice not implemented")
}

var ItemService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ItemServiceName,
	HandlerType: (*ItemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ItemServiceName, "GetItem", ItemServiceServer.GetItem),
		unary(ItemServiceName, "ListItems", ItemServiceServer.ListItems),
		unary(ItemServiceName, "CreateItem", ItemServiceServer.CreateItem),
		unary(ItemServiceName, "UpdateItem", ItemServiceServer.UpdateItem),
		unary(ItemServiceName, "DeleteItem", ItemServiceServer.DeleteItem),
		unary(ItemServiceName, "ChangeItemPosition", ItemServiceServer.ChangeItemPosition),
		unary(ItemServiceName, "UpsertItemTranslation", ItemServiceServer.UpsertItemTranslation),
		unary(ItemServiceName, "DeleteItemTranslation", ItemServiceServer.DeleteItemTranslation),
		unary(ItemServiceName, "AddImage", ItemServiceServer.AddImage),
		unary(ItemServiceName, "RemoveImage", ItemServiceServer.RemoveImage),
		unary(ItemServiceName, "ChangeImagePosition", ItemServiceServer.ChangeImagePosition),
		unary(ItemServiceName, "AddVariant", ItemServiceServer.AddVariant),
		unary(ItemServiceName, "RemoveVariant", ItemServiceServer.RemoveVariant),
		unary(ItemServiceName, "UpsertVariantTranslation", ItemServiceServer.UpsertVariantTranslation),
		unary(ItemServiceName, "AddVariantPrice", ItemServiceServer.AddVariantPrice),
		unary(ItemServiceName, "RemoveVariantPrice", ItemServiceServer.RemoveVariantPrice),
		unary(ItemServiceName, "AddBasePrice", ItemServiceServer.AddBasePrice),
		unary(ItemServiceName, "RemoveBasePrice", ItemServiceServer.RemoveBasePrice),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/item.json",
}

func RegisterItemServiceServer(s grpc.ServiceRegistrar, srv ItemServiceServer) {
	s.RegisterService(&ItemService_ServiceDesc, srv)
}

type ItemServiceClient interface {
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*Item, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*IDResponse, error)
	UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	ChangeItemPosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Item, error)
	UpsertItemTranslation(ctx context.Context, in *UpsertItemTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error)
	DeleteItemTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AddImage(ctx context.Context, in *AddImageRequest, opts ...grpc.CallOption) (*Image, error)
	RemoveImage(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	ChangeImagePosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Image, error)
	AddVariant(ctx context.Context, in *AddVariantRequest, opts ...grpc.CallOption) (*Variant, error)
	RemoveVariant(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	UpsertVariantTranslation(ctx context.Context, in *UpsertVariantTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error)
	AddVariantPrice(ctx context.Context, in *AddVariantPriceRequest, opts ...grpc.CallOption) (*Price, error)
	RemoveVariantPrice(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	AddBasePrice(ctx context.Context, in *AddBasePriceRequest, opts ...grpc.CallOption) (*Price, error)
	RemoveBasePrice(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error)
}

type itemServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewItemServiceClient(cc grpc.ClientConnInterface) ItemServiceClient {
	return &itemServiceClient{cc: cc}
}

func (c *itemServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemServiceName, "GetItem", in, opts)
}

func (c *itemServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, ItemServiceName, "ListItems", in, opts)
}

func (c *itemServiceClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, ItemServiceName, "CreateItem", in, opts)
}

func (c *itemServiceClient) UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, ItemServiceName, "UpdateItem", in, opts)
}

func (c *itemServiceClient) DeleteItem(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "DeleteItem", in, opts)
}

func (c *itemServiceClient) ChangeItemPosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, ItemServiceName, "ChangeItemPosition", in, opts)
}

func (c *itemServiceClient) UpsertItemTranslation(ctx context.Context, in *UpsertItemTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, ItemServiceName, "UpsertItemTranslation", in, opts)
}

func (c *itemServiceClient) DeleteItemTranslation(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "DeleteItemTranslation", in, opts)
}

func (c *itemServiceClient) AddImage(ctx context.Context, in *AddImageRequest, opts ...grpc.CallOption) (*Image, error) {
	return invoke[Image](ctx, c.cc, ItemServiceName, "AddImage", in, opts)
}

func (c *itemServiceClient) RemoveImage(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "RemoveImage", in, opts)
}

func (c *itemServiceClient) ChangeImagePosition(ctx context.Context, in *ChangePositionRequest, opts ...grpc.CallOption) (*Image, error) {
	return invoke[Image](ctx, c.cc, ItemServiceName, "ChangeImagePosition", in, opts)
}

func (c *itemServiceClient) AddVariant(ctx context.Context, in *AddVariantRequest, opts ...grpc.CallOption) (*Variant, error) {
	return invoke[Variant](ctx, c.cc, ItemServiceName, "AddVariant", in, opts)
}

func (c *itemServiceClient) RemoveVariant(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "RemoveVariant", in, opts)
}

func (c *itemServiceClient) UpsertVariantTranslation(ctx context.Context, in *UpsertVariantTranslationRequest, opts ...grpc.CallOption) (*IDResponse, error) {
	return invoke[IDResponse](ctx, c.cc, ItemServiceName, "UpsertVariantTranslation", in, opts)
}

func (c *itemServiceClient) AddVariantPrice(ctx context.Context, in *AddVariantPriceRequest, opts ...grpc.CallOption) (*Price, error) {
	return invoke[Price](ctx, c.cc, ItemServiceName, "AddVariantPrice", in, opts)
}

func (c *itemServiceClient) RemoveVariantPrice(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "RemoveVariantPrice", in, opts)
}

func (c *itemServiceClient) AddBasePrice(ctx context.Context, in *AddBasePriceRequest, opts ...grpc.CallOption) (*Price, error) {
	return invoke[Price](ctx, c.cc, ItemServiceName, "AddBasePrice", in, opts)
}

func (c *itemServiceClient) RemoveBasePrice(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, ItemServiceName, "RemoveBasePrice", in, opts)
}
