package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"资源不存在", apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在"), http.StatusNotFound},
		{"排序越界", apperrors.New(apperrors.ErrCodeInvalidPosition, "越界"), http.StatusBadRequest},
		{"重复记录", apperrors.ErrDuplicateEntry, http.StatusConflict},
		{"并发冲突", apperrors.ErrConcurrencyConflict, http.StatusConflict},
		{"未登录", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"无权限", apperrors.ErrForbidden, http.StatusForbidden},
		{"业务规则", apperrors.New(apperrors.ErrCodeBusinessError, "x"), http.StatusUnprocessableEntity},
		{"普通错误", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	t.Run("业务错误", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Error(c, apperrors.New(apperrors.ErrCodeItemNotFound, "商品不存在"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperrors.ErrCodeItemNotFound, body.Code)
		assert.Equal(t, "商品不存在", body.Message)
	})

	t.Run("内部错误不泄露细节", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Error(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	})
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]int{"position": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"position":2}}`, w.Body.String())
}
