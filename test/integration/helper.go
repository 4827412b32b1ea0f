//go:build integration

// Package integration 针对本地运行的服务做端到端测试
//
// 先启动服务（auth.secret留空），再执行：
//
//	go test -tags=integration ./test/integration/...
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	catalogv1 "github.com/xiebiao/storecatalog/api/catalogv1"
)

const (
	// BaseURL REST接口地址
	BaseURL = "http://localhost:8080/api/v1"
	// GRPCAddr gRPC地址
	GRPCAddr = "localhost:50051"
	// Timeout 单个请求超时
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PositionData 排序接口返回的实体
type PositionData struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// Dial 连接gRPC服务，测试结束时自动关闭
func Dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.Dial(GRPCAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(catalogv1.CodecName)))
	require.NoError(t, err, "连接gRPC失败")
	t.Cleanup(func() { conn.Close() })
	return conn
}

// Context 带超时的请求上下文
func Context(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	t.Cleanup(cancel)
	return ctx
}

// PutJSON 发送PUT请求并解析统一响应
func PutJSON(t *testing.T, url string, data interface{}) (int, *Response) {
	t.Helper()
	body, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")
	return do(t, req)
}

// GetJSON 发送GET请求并解析统一响应
func GetJSON(t *testing.T, url string) (int, *Response) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err, "创建HTTP请求失败")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (int, *Response) {
	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(body, &result), "解析JSON响应失败: %s", string(body))
	return resp.StatusCode, &result
}

// UniqueSlug 生成不重复的slug，避免重复运行时冲突
func UniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CreateCategories 通过gRPC创建n个分类，测试结束时删除
func CreateCategories(t *testing.T, client catalogv1.CategoryServiceClient, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		resp, err := client.CreateCategory(Context(t), &catalogv1.CreateCategoryRequest{Slug: UniqueSlug("it-category")})
		require.NoError(t, err, "创建分类失败")
		ids = append(ids, resp.Id)
	}
	t.Cleanup(func() {
		for _, id := range ids {
			client.DeleteCategory(context.Background(), &catalogv1.IDRequest{Id: id})
		}
	})
	return ids
}
