package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Каналы доставки сообщений оператору
const (
	AlertChannelLog      = "log"
	AlertChannelWhatsApp = "whatsapp"
	AlertChannelKafka    = "kafka"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Начисление монет: одна монета за каждые CoinsPerAmount единиц итоговой суммы
	CoinsPerAmount int64

	// Сообщения оператору
	AlertChannel    string
	AlertWorkers    int
	AlertQueueSize  int
	WhatsApp        WhatsAppConfig
	KafkaBrokers    []string
	KafkaAlertTopic string
}

// WhatsAppConfig содержит параметры API сообщений
type WhatsAppConfig struct {
	APIURL     string
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs загружает конфигурацию из переданных аргументов и переменных окружения.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadArgs(args []string) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:     24 * time.Hour,
		LogLevel:        "info",
		CoinsPerAmount:  10,
		AlertChannel:    AlertChannelLog,
		AlertWorkers:    2,
		AlertQueueSize:  100,
		KafkaAlertTopic: "order-alerts",
		WhatsApp: WhatsAppConfig{
			APIURL: "https://api.twilio.com",
		},
	}

	fs := flag.NewFlagSet("linecoffee", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := lookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envLogLevel, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if v, ok := lookupEnv("COINS_PER_AMOUNT"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.CoinsPerAmount = n
		}
	}

	if v, ok := lookupEnv("ALERT_CHANNEL"); ok {
		cfg.AlertChannel = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookupEnv("ALERT_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertWorkers = n
		}
	}

	if v, ok := lookupEnv("ALERT_QUEUE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertQueueSize = n
		}
	}

	// Учетные данные канала сообщений берутся только из env
	if v, ok := lookupEnv("WHATSAPP_API_URL"); ok {
		cfg.WhatsApp.APIURL = v
	}
	cfg.WhatsApp.AccountSID = os.Getenv("WHATSAPP_ACCOUNT_SID")
	cfg.WhatsApp.AuthToken = os.Getenv("WHATSAPP_AUTH_TOKEN")
	cfg.WhatsApp.From = os.Getenv("WHATSAPP_FROM")
	cfg.WhatsApp.To = os.Getenv("WHATSAPP_TO")

	if v, ok := lookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(v)
	}
	if v, ok := lookupEnv("KAFKA_ALERT_TOPIC"); ok {
		cfg.KafkaAlertTopic = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет обязательные параметры
func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return errors.New("database URI is required (use -d flag or DATABASE_URI env)")
	}

	switch c.AlertChannel {
	case AlertChannelLog:
	case AlertChannelWhatsApp:
		w := c.WhatsApp
		if w.AccountSID == "" || w.AuthToken == "" || w.From == "" || w.To == "" {
			return errors.New("whatsapp alert channel requires WHATSAPP_ACCOUNT_SID, WHATSAPP_AUTH_TOKEN, WHATSAPP_FROM and WHATSAPP_TO")
		}
	case AlertChannelKafka:
		if len(c.KafkaBrokers) == 0 {
			return errors.New("kafka alert channel requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown alert channel %q (use log, whatsapp or kafka)", c.AlertChannel)
	}

	return nil
}

// lookupEnv считает пустую переменную окружения незаданной
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
