package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"qrdine/ledger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Session  SessionConfig
	Orders   OrdersConfig
	Menu     MenuConfig
	Gateway  GatewayConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

func (d DatabaseConfig) ConnectionString() string {
	return "host=" + d.Host +
		" port=" + strconv.Itoa(d.Port) +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	SecureCookie bool
}

type OrdersConfig struct {
	TaxRate         decimal.Decimal
	RevenueMode     ledger.RevenueMode
	CartTTL         time.Duration
	RatingMarkerTTL time.Duration
}

type MenuConfig struct {
	PublicBaseURL string
	UploadDir     string
}

type GatewayConfig struct {
	MenuSvcURL      string
	OrderSvcURL     string
	RateSvcURL      string
	AnalyticsSvcURL string
}

// Load reads configuration from the environment, after merging a local .env
// file when one exists. defaultPort is the service's conventional port.
func Load(defaultPort int) (*Config, error) {
	_ = godotenv.Load()

	taxRate, err := decimal.NewFromString(getEnvString("TAX_RATE", "0.08"))
	if err != nil {
		return nil, fmt.Errorf("TAX_RATE: %w", err)
	}
	revenueMode, err := ledger.ParseRevenueMode(getEnvString("REVENUE_MODE", string(ledger.CreditOnCreateAndComplete)))
	if err != nil {
		return nil, fmt.Errorf("REVENUE_MODE: %w", err)
	}

	return &Config{
		Env: getEnvString("APP_ENV", "production"),
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", defaultPort),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnvString("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 5432),
			User:         getEnvString("DB_USER", "qrdine"),
			Password:     getEnvString("DB_PASSWORD", "qrdine"),
			Name:         getEnvString("DB_NAME", "qrdine"),
			SSLMode:      getEnvString("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Broker:  getEnvString("KAFKA_BROKER", "localhost:9092"),
			Topic:   getEnvString("KAFKA_TOPIC", "hotel-events"),
			GroupID: getEnvString("KAFKA_GROUP_ID", "agg-svc"),
		},
		Session: SessionConfig{
			Secret:       getEnvString("SESSION_SECRET", "dev-only-secret"),
			TTL:          getEnvDuration("SESSION_TTL", 12*time.Hour),
			SecureCookie: getEnvBool("SESSION_SECURE_COOKIE", false),
		},
		Orders: OrdersConfig{
			TaxRate:         taxRate,
			RevenueMode:     revenueMode,
			CartTTL:         getEnvDuration("CART_TTL", 2*time.Hour),
			RatingMarkerTTL: getEnvDuration("RATING_MARKER_TTL", 24*time.Hour),
		},
		Menu: MenuConfig{
			PublicBaseURL: getEnvString("PUBLIC_BASE_URL", "http://localhost:8080"),
			UploadDir:     getEnvString("UPLOAD_DIR", "./uploads"),
		},
		Gateway: GatewayConfig{
			MenuSvcURL:      getEnvString("MENU_SVC_URL", "http://localhost:8081"),
			OrderSvcURL:     getEnvString("ORDER_SVC_URL", "http://localhost:8082"),
			RateSvcURL:      getEnvString("RATE_SVC_URL", "http://localhost:8083"),
			AnalyticsSvcURL: getEnvString("ANALYTICS_SVC_URL", "http://localhost:8084"),
		},
	}, nil
}

// MustLoad is Load for service entry points.
func MustLoad(defaultPort int) *Config {
	cfg, err := Load(defaultPort)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	return cfg
}

// NewLogger returns a zap logger tagged with the service name.
func NewLogger(cfg *Config, service string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	return logger.With(zap.String("service", service))
}

func MustInitPostgres(cfg DatabaseConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	logger.Info("Database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
	return db
}

func MustInitRedis(cfg RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
