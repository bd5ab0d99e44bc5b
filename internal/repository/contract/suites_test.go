package contract

import "testing"

func TestMust_ReturnsSeededValue(t *testing.T) {
	seed := func() (int64, error) { return 42, nil }
	if got := must[int64](t)(seed()); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}
