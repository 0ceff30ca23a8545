package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_l2/internal/ports"
)

// JSONLResult — счётчики потоковой валидации.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// Запас на большие строки.
const maxLineBytes = 10 * 1024 * 1024

// ValidateJSONLStream — построчная валидация JSONL: валидные записи уходят в ow
// каноническим JSON, невалидные считаются и пропускаются. Пустые строки — не записи.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		order, err := ValidateOrderFromJSON(ctx, validator, line)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}

		if wErr := writeCanonical(ow, order); wErr != nil {
			return res, wErr
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
