package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Redis struct {
	Addr         string        `default:"redis:6379" envconfig:"ADDR"`
	Password     string        `default:"" envconfig:"PASSWORD"`
	DB           int           `default:"0" envconfig:"DB"`
	PoolSize     int           `default:"10" envconfig:"POOL_SIZE"`
	DialTimeout  time.Duration `default:"5s" envconfig:"DIAL_TIMEOUT"`
	ReadTimeout  time.Duration `default:"3s" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `default:"3s" envconfig:"WRITE_TIMEOUT"`
}

type Idempotency struct {
	// TTL — окно, в течение которого повтор с тем же токеном считается replay.
	TTL time.Duration `default:"600s" envconfig:"TTL"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"orders-app" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP        HTTP
	Redis       Redis
	Idempotency Idempotency
	Tracing     Tracing
	Logger      Logger
}

// Load — конфигурация из окружения с префиксом ORDER.
func Load() (Config, error) {
	return LoadWithPrefix("ORDER")
}

// LoadWithPrefix — то же с произвольным префиксом (используется тестами,
// чтобы не конфликтовать с реальным окружением).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
