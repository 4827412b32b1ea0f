package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("文件覆盖默认值", func(t *testing.T) {
		path := writeConfig(t, `
server:
  grpc_port: 6000
  http_port: 6001
database:
  dbname: catalog_test
cache:
  list_ttl: 60
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 6000, cfg.Server.GRPCPort)
		assert.Equal(t, "catalog_test", cfg.Database.DBName)
		assert.Equal(t, time.Minute, cfg.Cache.GetListTTL())
		assert.Equal(t, 10*time.Minute, cfg.Cache.GetDetailTTL(), "未配置字段使用默认值")
		assert.Equal(t, "utf8mb4", cfg.Database.Charset)
		assert.False(t, cfg.Auth.Enabled())
	})

	t.Run("环境变量覆盖", func(t *testing.T) {
		path := writeConfig(t, "server:\n  mode: debug\n")
		t.Setenv("CATALOG_DATABASE_PASSWORD", "s3cret")
		t.Setenv("CATALOG_AUTH_SECRET", "jwt-key")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.True(t, cfg.Auth.Enabled())
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("端口冲突", func(t *testing.T) {
		path := writeConfig(t, "server:\n  grpc_port: 7000\n  http_port: 7000\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("生产环境必须配置密钥", func(t *testing.T) {
		path := writeConfig(t, "server:\n  mode: release\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 3306, User: "root", Password: "pw", DBName: "store_catalog",
		Charset: "utf8mb4", ParseTime: true, Loc: "Europe/Kyiv",
	}
	assert.Equal(t, "root:pw@tcp(db:3306)/store_catalog?charset=utf8mb4&parseTime=true&loc=Europe%2FKyiv", d.DSN())
}
