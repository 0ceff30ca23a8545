package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gunvolt24/wb_l2/config"
	redisrepo "github.com/Gunvolt24/wb_l2/internal/repo/redis"
	"github.com/Gunvolt24/wb_l2/pkg/logger"
	"github.com/Gunvolt24/wb_l2/pkg/validate"
	"github.com/joho/godotenv"
)

// CLI-приложение для валидации и загрузки заказов в Redis.
// Без флага -seed работает как чистый валидатор: валидные записи
// печатаются в stdout каноническим JSON.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	seed := flag.Bool("seed", false, "save valid orders to Redis (config from ORDER_* env)")
	flag.Parse()

	ctx := context.Background()
	orderValidator := validate.NewOrderValidator()
	format := validate.InputFormat(*formatStr)

	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	if !*seed {
		summary, err := validate.ValidateFile(ctx, orderValidator, path, format, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
		return
	}

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	client, err := redisrepo.NewClient(ctx, redisrepo.ClientOptions{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "redis: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	repo := redisrepo.NewOrderRepository(redisrepo.NewKVStore(client), logg)

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	saved, skipped, err := seedFromReader(ctx, orderValidator, repo, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "seed ok (%d saved / %d skipped)\n", saved, skipped)
}

// seedFromReader — построчно валидирует JSONL и сохраняет валидные заказы.
// Невалидные строки пропускаются (счётчик skipped), ошибка хранилища фатальна.
func seedFromReader(ctx context.Context, v *validate.OrderValidator, repo *redisrepo.OrderRepository, ir io.Reader) (saved, skipped int, err error) {
	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		order, vErr := validate.ValidateOrderFromJSON(ctx, v, line)
		if vErr != nil {
			skipped++
			continue
		}
		if order.ID == "" {
			// Записи без id в хранилище не кладём — нечем построить ключ.
			skipped++
			continue
		}

		if sErr := repo.Save(ctx, order); sErr != nil {
			return saved, skipped, fmt.Errorf("save order %s: %w", order.ID, sErr)
		}
		saved++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return saved, skipped, fmt.Errorf("scan: %w", scanErr)
	}
	return saved, skipped, nil
}
