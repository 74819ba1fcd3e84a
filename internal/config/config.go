package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Wallet   WalletConfig
	Worker   WorkerConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"coinledger"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type WalletConfig struct {
	// MinWithdrawalCoins is the payout floor, 2000 coins = 100 rupees.
	MinWithdrawalCoins      int64  `env:"WALLET_MIN_WITHDRAWAL_COINS" envDefault:"2000"`
	EstimatedProcessingTime string `env:"WALLET_ESTIMATED_PROCESSING_TIME" envDefault:"3-5 business days"`
}
type WorkerConfig struct {
	PayoutInterval time.Duration `env:"WORKER_PAYOUT_INTERVAL" envDefault:"3m"`
	// PayoutMinAge keeps freshly created withdrawals cancellable for a grace
	// period before they are dispatched to the payout processor.
	PayoutMinAge    time.Duration `env:"WORKER_PAYOUT_MIN_AGE" envDefault:"5m"`
	PayoutBatchSize int           `env:"WORKER_PAYOUT_BATCH_SIZE" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
