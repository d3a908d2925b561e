package query

import (
	"testing"

	"github.com/aalvaropc/skyfare/internal/domain"
)

const artifact = `{
  "id": "20260203T101112Z_demo",
  "batch_name": "Demo",
  "total_cents": 7000,
  "quotes": [
    {"passenger_name": "S****** T. S***********", "miles": 700, "elite": false, "price_cents": 7000},
    {"passenger_name": "L******** M. H*******", "miles": 2000, "elite": true, "price_cents": 0}
  ]
}`

func TestApply_Success(t *testing.T) {
	res, err := Apply([]byte(artifact), []string{
		"$.total_cents",
		"$.batch_name",
		"$.quotes[1].elite",
		"$.quotes[*].miles",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"7000", "Demo", "true", "[700,2000]"}
	if len(res) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(res))
	}
	for i, r := range res {
		if !r.OK {
			t.Fatalf("%s: unexpected failure %q", r.Expr, r.Error)
		}
		if r.Value != want[i] {
			t.Fatalf("%s: got %q want %q", r.Expr, r.Value, want[i])
		}
	}
}

func TestApply_FailuresAreReportedPerExpression(t *testing.T) {
	res, err := Apply([]byte(artifact), []string{"", "$.nope", "$.id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res[0].OK || res[0].Error == "" {
		t.Fatalf("expected empty expression to fail: %+v", res[0])
	}
	if res[1].OK {
		t.Fatalf("expected missing key to fail: %+v", res[1])
	}
	if !res[2].OK || res[2].Value != "20260203T101112Z_demo" {
		t.Fatalf("expected later expression to still run: %+v", res[2])
	}
}

func TestApply_NonJSON(t *testing.T) {
	_, err := Apply([]byte("hello"), []string{"$.x"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
