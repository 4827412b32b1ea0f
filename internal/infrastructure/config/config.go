package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，如CATALOG_DATABASE_PASSWORD覆盖database.password
const EnvPrefix = "CATALOG"

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	MQ       MQConfig       `mapstructure:"mq"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

type ServerConfig struct {
	Name            string        `mapstructure:"name"`
	GRPCPort        int           `mapstructure:"grpc_port"`
	HTTPPort        int           `mapstructure:"http_port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxMsgSize      int           `mapstructure:"max_msg_size"`
	Reflection      bool          `mapstructure:"reflection"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
}

// DSN 生成MySQL连接字符串
// 格式：user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (d DatabaseConfig) DSN() string {
	loc := url.QueryEscape(d.Loc)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
}

type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr 返回Redis地址
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CacheConfig 列表缓存配置
// TTL单位为秒，便于在YAML里直接写数字
type CacheConfig struct {
	ListTTL   int    `mapstructure:"list_ttl"`
	DetailTTL int    `mapstructure:"detail_ttl"`
	KeyPrefix string `mapstructure:"key_prefix"`

	// 熔断器：连续失败达到阈值后在OpenTimeout内直接跳过Redis
	BreakerFailures    uint32        `mapstructure:"breaker_failures"`
	BreakerOpenTimeout time.Duration `mapstructure:"breaker_open_timeout"`
}

// GetListTTL 获取列表缓存TTL
func (c CacheConfig) GetListTTL() time.Duration {
	return time.Duration(c.ListTTL) * time.Second
}

// GetDetailTTL 获取详情缓存TTL
func (c CacheConfig) GetDetailTTL() time.Duration {
	return time.Duration(c.DetailTTL) * time.Second
}

// AuthConfig 写接口鉴权
// Secret为空时不做鉴权（本地开发）
type AuthConfig struct {
	Secret      string        `mapstructure:"secret"`
	Issuer      string        `mapstructure:"issuer"`
	TokenExpire time.Duration `mapstructure:"token_expire"`
}

// Enabled 是否启用鉴权
func (a AuthConfig) Enabled() bool {
	return a.Secret != ""
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// MQConfig 目录变更事件
type MQConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	URL          string `mapstructure:"url"`
	Exchange     string `mapstructure:"exchange"`
	ExchangeType string `mapstructure:"exchange_type"`
	// Queue 本实例的缓存失效队列，为空则不消费
	Queue string `mapstructure:"queue"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// Load 加载配置文件
// 支持：
// 1. path为空时在./config和当前目录查找config.yaml
// 2. 环境变量覆盖（如CATALOG_DATABASE_PASSWORD → database.password）
// 3. 未配置的字段使用setDefaults中的默认值
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// 找不到配置文件时完全依赖默认值和环境变量（容器部署）
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 嵌套key的点号替换为下划线，才能匹配CATALOG_DATABASE_PASSWORD
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "store-catalog")
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_msg_size", 10*1024*1024)
	v.SetDefault("server.reflection", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "store_catalog")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.loc", "UTC")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.slow_threshold", 200*time.Millisecond)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.min_idle_conns", 5)
	v.SetDefault("redis.dial_timeout", 3*time.Second)
	v.SetDefault("redis.read_timeout", time.Second)
	v.SetDefault("redis.write_timeout", time.Second)

	v.SetDefault("cache.list_ttl", 300)
	v.SetDefault("cache.detail_ttl", 600)
	v.SetDefault("cache.key_prefix", "catalog")
	v.SetDefault("cache.breaker_failures", 5)
	v.SetDefault("cache.breaker_open_timeout", 30*time.Second)

	// 未设置默认值的key不会被AutomaticEnv识别，敏感字段也要声明
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "store-catalog")
	v.SetDefault("auth.token_expire", 24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.enable_caller", false)

	v.SetDefault("mq.enabled", false)
	v.SetDefault("mq.url", "")
	v.SetDefault("mq.queue", "")
	v.SetDefault("mq.exchange", "catalog.events")
	v.SetDefault("mq.exchange_type", "topic")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// Validate 配置校验
func (c *Config) Validate() error {
	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("无效的gRPC端口: %d", c.Server.GRPCPort)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("无效的HTTP端口: %d", c.Server.HTTPPort)
	}
	if c.Server.GRPCPort == c.Server.HTTPPort {
		return fmt.Errorf("gRPC与HTTP端口不能相同: %d", c.Server.GRPCPort)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("无效的日志格式: %s", c.Log.Format)
	}

	if c.MQ.Enabled && c.MQ.URL == "" {
		return fmt.Errorf("启用消息队列时必须配置mq.url")
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("采样率必须在0到1之间: %v", c.Tracing.SampleRatio)
	}

	if c.Server.Mode == "release" && !c.Auth.Enabled() {
		return fmt.Errorf("生产环境必须配置auth.secret")
	}

	return nil
}
