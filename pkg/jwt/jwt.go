// Package jwt 签发和校验后台写接口使用的JWT
//
// 目录的读接口是公开的，写接口（创建、修改、排序、删除）要求携带
// role为admin或editor的Token：
//
//	Authorization: Bearer <token>
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// 角色
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Manager JWT管理器
type Manager struct {
	secret []byte
	issuer string
	expire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret, issuer string, expire time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		expire: expire,
	}
}

// Claims 自定义载荷
// Subject为操作者标识（后台账号），写入日志便于审计
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CanWrite 是否允许修改目录
func (c *Claims) CanWrite() bool {
	return c.Role == RoleAdmin || c.Role == RoleEditor
}

// GenerateToken 生成Token
func (m *Manager) GenerateToken(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "生成Token失败")
	}
	return signed, nil
}

// ParseToken 校验并解析Token
// 过期返回ErrTokenExpired，其余失败（签名、算法、issuer）返回ErrInvalidToken
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 只接受HMAC，防止alg=none或公钥混淆
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken.WithCause(err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
