package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_l2/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	line1 := orderJSON("id-1", "Laptop", 1)
	line2 := orderJSON("id-2", "Laptop", 0) // invalid quantity
	line3 := ""                             // пустая строка — ок
	line4 := orderJSON("id-3", "Phone", 3)

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var o1, o2 domain.Order
	if err := json.Unmarshal([]byte(outLines[0]), &o1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &o2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	got := []string{o1.ID, o2.ID}
	wantSet := map[string]bool{"id-1": true, "id-3": true}
	for _, id := range got {
		if !wantSet[id] {
			t.Fatalf("unexpected id in output: %s", id)
		}
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	bigProduct := strings.Repeat("X", 200_000) // > 64KB
	raw := orderJSON("id-big", bigProduct, 1)

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(raw+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if strings.Count(strings.TrimSpace(out.String()), "\n")+1 != 1 {
		t.Fatalf("expected 1 output line")
	}
}
