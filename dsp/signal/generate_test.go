package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-chains/internal/testutil"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}

	if _, err := ParseKind("square"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(square): got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithSampleRate(4), WithFrequency(1), WithAmplitude(0.5))

	tests := []struct {
		kind Kind
		want []float64
	}{
		{Zero, []float64{0, 0, 0, 0}},
		{Impulse, []float64{0.5, 0, 0, 0}},
		{Ones, []float64{0.5, 0.5, 0.5, 0.5}},
		{Sine, []float64{0, 0.5, 0, -0.5}},
	}

	for _, tt := range tests {
		got, err := g.Generate(tt.kind, 4)
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}

		testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
	}
}

func TestNoiseIsSeeded(t *testing.T) {
	t.Parallel()

	a, err := NewGenerator(WithSeed(7)).Generate(Noise, 64)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewGenerator(WithSeed(7)).Generate(Noise, 64)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if math.Abs(v) > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	g := NewGenerator(WithSampleRate(-1), WithAmplitude(-1))
	if g.SampleRate() != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", g.SampleRate())
	}

	if _, err := g.Generate(Ones, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}

	if _, err := g.Generate(Kind("saw"), 4); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	out, err := Normalize([]float64{0.25, -0.5}, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0.5, -1}, 1e-12)

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}

	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}
