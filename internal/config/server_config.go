package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Sheets  SheetsConfig
	Twilio  TwilioConfig
	Kafka   KafkaConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name     string
	Env      string
	ShopName string
	// TimeZone is used for human readable timestamps in notifications.
	TimeZone string
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type SheetsConfig struct {
	SpreadsheetID       string
	ProductsSheet       string
	OrdersSheet         string
	ServiceAccountEmail string
	PrivateKey          string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string // e.g. whatsapp:+14155238886
	AdminPhone string // e.g. whatsapp:+234XXXXXXXXXX
	BaseURL    string
	Timeout    time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
	// SASL/PLAIN, used only when both are set
	Username string
	Password string
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "farm_hub"),
			Env:      getEnv("APP_ENV", "local"),
			ShopName: getEnv("SHOP_NAME", "Akanbi Farm Hub"),
			TimeZone: getEnv("NOTIFY_TIMEZONE", "UTC"),
		},
		Server: ServerConfig{
			Host:            getEnv("HTTP_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("HTTP_PORT", 8030),
			ShutdownTimeout: time.Duration(getEnvAsInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Sheets: SheetsConfig{
			SpreadsheetID:       getEnv("GOOGLE_SPREADSHEET_ID", ""),
			ProductsSheet:       getEnv("PRODUCTS_SHEET_NAME", "Products"),
			OrdersSheet:         getEnv("ORDERS_SHEET_NAME", "Orders"),
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			// keys pasted into env files usually carry escaped newlines
			PrivateKey: strings.ReplaceAll(getEnv("GOOGLE_PRIVATE_KEY", ""), `\n`, "\n"),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
			AdminPhone: getEnv("ADMIN_PHONE", ""),
			BaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com/2010-04-01"),
			Timeout:    time.Duration(getEnvAsInt("TWILIO_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:    splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "")),
			OrderTopic: getEnv("KAFKA_ORDER_TOPIC", "farm_hub_orders"),
			Username:   getEnv("KAFKA_USERNAME", ""),
			Password:   getEnv("KAFKA_PASSWORD", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ProductsRange skips the header row.
func (s SheetsConfig) ProductsRange() string {
	return fmt.Sprintf("%s!A2:G", s.ProductsSheet)
}

// OrdersRange spans the 10 order columns.
func (s SheetsConfig) OrdersRange() string {
	return fmt.Sprintf("%s!A:J", s.OrdersSheet)
}

// HasCredentials reports whether a service account is configured.
func (s SheetsConfig) HasCredentials() bool {
	return s.ServiceAccountEmail != "" && s.PrivateKey != ""
}

// Configured reports whether every value needed to send a message is set.
func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != "" && t.AdminPhone != ""
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.OrderTopic != ""
}

func (k KafkaConfig) HasSASL() bool {
	return k.Username != "" && k.Password != ""
}

// Location resolves the notification time zone.
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.TimeZone)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SPREADSHEET_ID is empty")
	}
	if c.Sheets.ProductsSheet == "" || c.Sheets.OrdersSheet == "" {
		return fmt.Errorf("sheet names must not be empty")
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("NOTIFY_TIMEZONE is invalid: %w", err)
	}
	// Twilio and Kafka are optional, the order flow works without them
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
