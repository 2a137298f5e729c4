// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 應用程式設定，於啟動時載入一次後不再修改
type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Auth     Auth
	Media    Media
	Log      Log
}

type Server struct {
	Addr string
}

// Database 連線參數；Host 預設為 localhost
type Database struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Media 圖片上傳服務設定
type Media struct {
	Provider      string
	CloudName     string
	APIKey        string
	APISecret     string
	Folder        string
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

type Log struct {
	Level  string
	Format string
}

// DSN renders a postgres:// connection URL. 帳密與資料庫名稱皆經過 URL 編碼
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// bindings maps config keys to the environment variable names the service
// has always used.
var bindings = map[string]string{
	"server.addr":         "SERVER_ADDR",
	"database.host":       "DB_HOST",
	"database.port":       "DB_PORT",
	"database.name":       "POSTGRES_DATABASE",
	"database.user":       "POSTGRES_USERNAME",
	"database.password":   "POSTGRES_PASSWORD",
	"database.sslmode":    "DB_SSLMODE",
	"redis.addr":          "REDIS_ADDR",
	"redis.password":      "REDIS_PASSWORD",
	"redis.db":            "REDIS_DB",
	"auth.jwtsecret":      "JWT_SECRET",
	"auth.tokenttl":       "TOKEN_TTL",
	"media.provider":      "MEDIA_PROVIDER",
	"media.cloudname":     "CLOUD_NAME",
	"media.apikey":        "API_KEY",
	"media.apisecret":     "API_SECRET",
	"media.folder":        "MEDIA_FOLDER",
	"media.bucket":        "S3_BUCKET",
	"media.region":        "S3_REGION",
	"media.endpoint":      "S3_ENDPOINT",
	"media.publicbaseurl": "S3_PUBLIC_URL",
	"log.level":           "LOG_LEVEL",
	"log.format":          "LOG_FORMAT",
}

// Load reads configuration from environment variables, an optional .env file
// and an optional config.yaml in the working directory. Real environment
// variables win over both files.
func Load() (Config, error) {
	return load(".env", "config.yaml")
}

func load(dotenvPath, yamlPath string) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.tokenttl", 24*time.Hour)
	v.SetDefault("media.provider", "cloudinary")
	v.SetDefault("media.region", "us-east-1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := mergeDotEnv(v, dotenvPath); err != nil {
		return Config{}, err
	}

	v.SetConfigFile(yamlPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, fmt.Errorf("read %s: %w", yamlPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// mergeDotEnv 讀取 .env，將其中的值作為預設值（環境變數優先）
func mergeDotEnv(v *viper.Viper, path string) error {
	dot := viper.New()
	dot.SetConfigFile(path)
	dot.SetConfigType("env")
	if err := dot.ReadInConfig(); err != nil {
		if missing(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	for key, env := range bindings {
		if dot.IsSet(env) {
			v.SetDefault(key, dot.Get(env))
		}
	}
	return nil
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
