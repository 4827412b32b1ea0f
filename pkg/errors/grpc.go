package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode 错误大类对应的gRPC状态码
func GRPCCode(err error) codes.Code {
	switch KindOf(err) {
	case KindNotFound:
		return codes.NotFound
	case KindInvalidArgument:
		return codes.InvalidArgument
	case KindAlreadyExists:
		return codes.AlreadyExists
	case KindConflict:
		return codes.Aborted
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindPermissionDenied:
		return codes.PermissionDenied
	case KindFailedPrecondition:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// ToGRPCStatus 把错误转换为gRPC状态
// 1. 已经是gRPC状态的错误原样返回
// 2. 上下文取消/超时映射为Canceled/DeadlineExceeded
// 3. AppError按错误码映射，内部错误只返回通用提示，不泄露底层信息
func ToGRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if s, ok := status.FromError(err); ok {
		return s
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.New(codes.Canceled, "请求已取消")
	case errors.Is(err, context.DeadlineExceeded):
		return status.New(codes.DeadlineExceeded, "请求超时")
	}

	code := GRPCCode(err)
	if code == codes.Internal {
		return status.New(codes.Internal, ErrInternal.Message)
	}
	return status.New(code, GetAppError(err).Message)
}
