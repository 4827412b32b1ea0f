// Package catalogv1 店铺目录服务的gRPC契约：消息、服务描述和客户端
//
// 消息是普通Go结构体，线上以JSON编码（content-subtype为json），
// 服务端与客户端都通过本包注册的codec收发。语言、价格类型、币种
// 沿用线上整数枚举：语言1..6，价格类型1..3，币种1..4，0表示未指定。
package catalogv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName 注册到gRPC的编码名
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("解析请求失败: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return CodecName
}

// WithJSON 客户端调用选项，所有catalog客户端默认带上
func WithJSON() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
