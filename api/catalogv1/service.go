package catalogv1

import (
	"context"
	"strings"

	"google.golang.org/grpc"
)

const (
	CategoryServiceName  = "catalog.v1.CategoryService"
	AttributeServiceName = "catalog.v1.AttributeService"
	ItemServiceName      = "catalog.v1.ItemService"
	HealthServiceName    = "catalog.v1.HealthService"
)

// fullMethod 拼出/service/method
func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary 生成MethodDesc的处理函数：解码请求，经过拦截器链后调用实现
func unary[Req any, Resp any, Srv any](service, method string, call func(Srv, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	name := fullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(Srv), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: name}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(Srv), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// invoke 客户端一元调用，强制使用JSON编码
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{WithJSON()}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// readOnly 不修改数据的方法，无需写权限
var readOnly = map[string]bool{
	fullMethod(CategoryServiceName, "GetCategory"):     true,
	fullMethod(CategoryServiceName, "ListCategories"):  true,
	fullMethod(AttributeServiceName, "GetAttribute"):   true,
	fullMethod(AttributeServiceName, "ListAttributes"): true,
	fullMethod(ItemServiceName, "GetItem"):             true,
	fullMethod(ItemServiceName, "ListItems"):           true,
}

// IsReadOnly 方法是否只读
// 健康检查和非本包的服务（grpc.health.v1、反射）都视为只读
func IsReadOnly(method string) bool {
	if readOnly[method] {
		return true
	}
	for _, svc := range []string{CategoryServiceName, AttributeServiceName, ItemServiceName} {
		if strings.HasPrefix(method, "/"+svc+"/") {
			return false
		}
	}
	return true
}
