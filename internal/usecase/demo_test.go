package usecase

import (
	"bytes"
	"testing"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func TestRunDemo_DefaultPolicy(t *testing.T) {
	var buf bytes.Buffer
	if err := RunDemo(&buf, domain.DefaultPricingPolicy()); err != nil {
		t.Fatalf("RunDemo error: %v", err)
	}

	want := "This ticket will cost $70.00\nThis other ticket will cost $0.00\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRunDemo_CustomPolicy(t *testing.T) {
	var buf bytes.Buffer
	if err := RunDemo(&buf, domain.PricingPolicy{CentsPerMile: 10, EliteDiscount: 0.25}); err != nil {
		t.Fatalf("RunDemo error: %v", err)
	}

	want := "This ticket will cost $70.00\nThis other ticket will cost $150.00\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestDemoTickets(t *testing.T) {
	ts := DemoTickets()
	if len(ts) != 2 {
		t.Fatalf("expected 2 demo tickets")
	}
	if ts[0].HasEliteStatus() || !ts[1].HasEliteStatus() {
		t.Fatalf("expected only the second passenger to be elite")
	}
}
