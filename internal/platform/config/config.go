package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// 環境変数で設定値を上書きする際の接頭辞です。
const envPrefix = "HR_"

// Storage driver 名です。
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverFile     = "file"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	TextGen  TextGenConfig  `yaml:"textgen"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr" env:"SERVER_LISTEN_ADDR"`
	// MaxSessions は保持するセッション数の上限です。0 の場合は既定値を使います。
	MaxSessions int    `yaml:"max_sessions" env:"SERVER_MAX_SESSIONS"`
}

// StorageConfig は社員コレクションの保存先に関する設定です。
type StorageConfig struct {
	Driver  string `yaml:"driver" env:"STORAGE_DRIVER"`
	Key     string `yaml:"key" env:"STORAGE_KEY"`
	FileDir string `yaml:"file_dir" env:"STORAGE_FILE_DIR"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host" env:"DATABASE_HOST"`
	Port               int           `yaml:"port" env:"DATABASE_PORT"`
	User               string        `yaml:"user" env:"DATABASE_USER"`
	Password           string        `yaml:"password" env:"DATABASE_PASSWORD"`
	Name               string        `yaml:"name" env:"DATABASE_NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"DATABASE_SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns       int           `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time" env:"DATABASE_CONN_MAX_IDLE_TIME"`
}

// RedisConfig は Redis 接続に関する設定です。
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
}

// TextGenConfig は文章生成サービスに関する設定です。API キーが空の場合、生成は常に代替文言になります。
type TextGenConfig struct {
	BaseURL string `yaml:"base_url" env:"TEXTGEN_BASE_URL"`
	APIKey  string `yaml:"api_key" env:"TEXTGEN_API_KEY"`
	Model   string `yaml:"model" env:"TEXTGEN_MODEL"`
	Locale  string `yaml:"locale" env:"TEXTGEN_LOCALE"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

const (
	defaultListenAddr  = ":50051"
	defaultFileDir     = "data"
	defaultTextGenURL  = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultTextGenName = "gemini-3-flash-preview"
	defaultLocale      = "th"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// Load は指定されたパスから設定ファイルを読み込み、HR_ で始まる環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("config: server.max_sessions must not be negative")
	}

	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: redis.addr must be set when storage.driver is redis")
		}
		if _, _, err := net.SplitHostPort(c.Redis.Addr); err != nil {
			return fmt.Errorf("config: redis.addr: %w", err)
		}
	}

	c.TextGen.normalize()

	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case "":
		return fmt.Errorf("config: storage.driver must be set")
	case DriverPostgres, DriverRedis:
	case DriverFile:
		if s.FileDir == "" {
			s.FileDir = defaultFileDir
		}
	default:
		return fmt.Errorf("config: storage.driver %q is not supported", s.Driver)
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (t *TextGenConfig) normalize() {
	if t.BaseURL == "" {
		t.BaseURL = defaultTextGenURL
	}
	if t.Model == "" {
		t.Model = defaultTextGenName
	}
	if t.Locale == "" {
		t.Locale = defaultLocale
	}
}

func (l *LogConfig) validateAndNormalize() error {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	l.Format = strings.ToLower(l.Format)
	switch l.Format {
	case "":
		l.Format = defaultLogFormat
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q must be text or json", l.Format)
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
