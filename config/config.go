package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage and event-log drivers.
const (
	StorageDriverDrive = "drive"
	StorageDriverMinIO = "minio"

	EventLogDriverSheets   = "sheets"
	EventLogDriverPostgres = "postgres"
	EventLogDriverSQLite   = "sqlite"
	EventLogDriverAMQP     = "amqp"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Event webhook specifics
	App      AppConfig
	LLM      LLMConfig
	Google   GoogleConfig
	Storage  StorageConfig
	EventLog EventLogConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string // proxies whose X-Forwarded-For is honoured; empty trusts none
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig holds the host time zone used for fallback dates.
type AppConfig struct {
	Timezone string
}

// LLMConfig holds the OpenRouter chat-completion settings.
type LLMConfig struct {
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	Referer  string
	AppTitle string
}

type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
}

type StorageConfig struct {
	Driver string
	Drive  DriveConfig
	MinIO  MinIOConfig
}

type DriveConfig struct {
	FolderID string
}

type MinIOConfig struct {
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	Bucket         string
	Region         string
	UseSSL         bool
}

type EventLogConfig struct {
	Driver   string
	Sheets   SheetsConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	AMQP     AMQPConfig
}

type SheetsConfig struct {
	SpreadsheetID string
	SheetName     string
}

type PostgresConfig struct {
	DSN string
}

type SQLiteConfig struct {
	Path string
}

type AMQPConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
}

type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

// UsesGoogle reports whether any configured driver talks to Google APIs.
func (c *Config) UsesGoogle() bool {
	return c.Storage.Driver == StorageDriverDrive || c.EventLog.Driver == EventLogDriverSheets
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = getList("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.App.Timezone = viper.GetString("app.timezone")

	// LLM
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	if key := viper.GetString("openrouter_key"); key != "" {
		cfg.LLM.APIKey = key
	}
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.LLM.Referer = viper.GetString("llm.referer")
	cfg.LLM.AppTitle = viper.GetString("llm.app_title")

	// Google
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	if googleCreds := viper.GetString("google_application_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}
	cfg.Google.TokenPath = viper.GetString("google.token_path")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Drive.FolderID = viper.GetString("storage.drive.folder_id")
	cfg.Storage.MinIO.Endpoint = viper.GetString("storage.minio.endpoint")
	cfg.Storage.MinIO.PublicEndpoint = viper.GetString("storage.minio.public_endpoint")
	cfg.Storage.MinIO.AccessKey = viper.GetString("storage.minio.access_key")
	cfg.Storage.MinIO.SecretKey = viper.GetString("storage.minio.secret_key")
	cfg.Storage.MinIO.Bucket = viper.GetString("storage.minio.bucket")
	cfg.Storage.MinIO.Region = viper.GetString("storage.minio.region")
	cfg.Storage.MinIO.UseSSL = viper.GetBool("storage.minio.use_ssl")

	// Event log
	cfg.EventLog.Driver = strings.ToLower(viper.GetString("eventlog.driver"))
	cfg.EventLog.Sheets.SpreadsheetID = viper.GetString("eventlog.sheets.spreadsheet_id")
	if sheetID := viper.GetString("sheet_id"); sheetID != "" {
		cfg.EventLog.Sheets.SpreadsheetID = sheetID
	}
	cfg.EventLog.Sheets.SheetName = viper.GetString("eventlog.sheets.sheet_name")
	cfg.EventLog.Postgres.DSN = viper.GetString("eventlog.postgres.dsn")
	cfg.EventLog.SQLite.Path = viper.GetString("eventlog.sqlite.path")
	cfg.EventLog.AMQP.URL = viper.GetString("eventlog.amqp.url")
	cfg.EventLog.AMQP.Exchange = viper.GetString("eventlog.amqp.exchange")
	cfg.EventLog.AMQP.RoutingKey = viper.GetString("eventlog.amqp.routing_key")

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = getList("webhook.allowed_ips")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.timezone", "UTC")

	viper.SetDefault("llm.model", "deepseek/deepseek-r1:free")
	viper.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("llm.timeout", "60s")

	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")

	viper.SetDefault("storage.driver", StorageDriverDrive)
	viper.SetDefault("storage.minio.bucket", "event-calendar")
	viper.SetDefault("storage.minio.region", "us-east-1")

	viper.SetDefault("eventlog.driver", EventLogDriverSheets)
	viper.SetDefault("eventlog.sheets.sheet_name", "Form Responses 1")
	viper.SetDefault("eventlog.sqlite.path", "data/events.db")
	viper.SetDefault("eventlog.amqp.exchange", "event-calendar")
	viper.SetDefault("eventlog.amqp.routing_key", "event.submitted")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
}

// validate checks required settings for the selected drivers.
func (c *Config) validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (or set OPENROUTER_KEY)")
	}

	switch c.Storage.Driver {
	case StorageDriverDrive:
	case StorageDriverMinIO:
		if c.Storage.MinIO.Endpoint == "" {
			return fmt.Errorf("storage.minio.endpoint is required for the minio driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.EventLog.Driver {
	case EventLogDriverSheets:
		if c.EventLog.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("eventlog.sheets.spreadsheet_id is required (or set SHEET_ID)")
		}
	case EventLogDriverPostgres:
		if c.EventLog.Postgres.DSN == "" {
			return fmt.Errorf("eventlog.postgres.dsn is required for the postgres driver")
		}
	case EventLogDriverSQLite:
		if c.EventLog.SQLite.Path == "" {
			return fmt.Errorf("eventlog.sqlite.path is required for the sqlite driver")
		}
	case EventLogDriverAMQP:
		if c.EventLog.AMQP.URL == "" {
			return fmt.Errorf("eventlog.amqp.url is required for the amqp driver")
		}
	default:
		return fmt.Errorf("unknown eventlog.driver %q", c.EventLog.Driver)
	}

	if c.UsesGoogle() && c.Google.CredentialsPath == "" {
		return fmt.Errorf("google.credentials_path is required for the drive and sheets drivers")
	}

	return nil
}

// getList reads a YAML list or a comma-separated env value.
func getList(key string) []string {
	if raw, ok := viper.Get(key).(string); ok {
		return splitList(raw)
	}
	return viper.GetStringSlice(key)
}

// splitList splits a comma-separated env value since viper does not parse
// arrays from env reliably.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
