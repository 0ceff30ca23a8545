package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_l2/internal/ports"
)

// InputFormat — формат входного файла.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// detectFormat — формат по расширению; неизвестное расширение считаем JSON.
func detectFormat(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — валидирует файл с заказами и печатает валидные записи
// каноническим JSONL в ow. JSON-файл может содержать один объект или массив;
// .jsonl обрабатывается построчно. Возвращает сводку вида "N valid / M invalid".
func ValidateFile(ctx context.Context, validator ports.OrderValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, rErr := io.ReadAll(file)
		if rErr != nil {
			return "", fmt.Errorf("read file: %w", rErr)
		}

		if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			res, aErr := validateArray(ctx, validator, raw, ow)
			if aErr != nil {
				return "", aErr
			}
			return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount), nil
		}

		order, vErr := ValidateOrderFromJSON(ctx, validator, raw)
		if vErr != nil {
			return "0 valid / 1 invalid", vErr
		}
		if wErr := writeCanonical(ow, order); wErr != nil {
			return "", wErr
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		res, sErr := ValidateJSONLStream(ctx, validator, file, ow)
		if sErr != nil {
			return "", sErr
		}
		return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %q", format)
	}
}

// validateArray — JSON-массив заказов; как и в JSONL, невалидные элементы
// считаются и пропускаются, а не валят весь файл.
func validateArray(ctx context.Context, validator ports.OrderValidator, raw []byte, ow io.Writer) (JSONLResult, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return JSONLResult{}, fmt.Errorf("invalid json array: %w", err)
	}

	var res JSONLResult
	for _, item := range items {
		order, err := ValidateOrderFromJSON(ctx, validator, item)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}
		if wErr := writeCanonical(ow, order); wErr != nil {
			return res, wErr
		}
		res.ValidLinesCount++
	}
	return res, nil
}
