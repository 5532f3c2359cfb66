package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dkravets/layoffpulse/internal/layoffs/controller"
	"github.com/dkravets/layoffpulse/internal/layoffs/dataset"
	gorm "github.com/dkravets/layoffpulse/internal/layoffs/db"
	"github.com/dkravets/layoffpulse/internal/layoffs/enrich"
	"github.com/dkravets/layoffpulse/internal/layoffs/events"
	"github.com/dkravets/layoffpulse/internal/layoffs/handlers"
	"github.com/dkravets/layoffpulse/internal/layoffs/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort     int      `yaml:"HTTP_PORT"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	JWTSecret    string   `yaml:"JWT_SECRET"`
	Topic        string   `yaml:"TOPIC"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	dbConf := initDatabase(cfg)
	repo, err := gorm.NewRepository(dbConf)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		log.Fatal("failed to initialize Kafka producer", err)
	}
	defer producer.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	enricher := enrich.NewEnricher(dataset.EnrichmentTables(), logger)
	analyticsSvc := controller.NewAnalyticsService(repo, enricher, producer, m, controller.AuxData{
		Financials: dataset.Financials(),
		Histories:  dataset.Histories(),
		Headlines:  dataset.Headlines(),
	}, logger)

	if err := analyticsSvc.LoadDataset(context.Background(), dataset.BaseRecords()); err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	// Create handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, m, logger)

	// Create server
	server := handlers.NewServer(cfg.HTTPPort, logger)
	server.RegisterRoutes(analyticsHandler, cfg.JWTSecret, registry)

	// Start server
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// loadConfig loads configuration. Use real config tooling (e.g. Viper) in production.
func loadConfig() (*Config, error) {
	configPath := filepath.Join("internal", "layoffs", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// initDatabase initializes the database connection.
func initDatabase(cfg *Config) *gorm.Config {
	return &gorm.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
