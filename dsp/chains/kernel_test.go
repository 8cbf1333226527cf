package chains

import (
	"errors"
	"math"
	"testing"
)

type testParams struct{}

func identityFactory(*Inputs[testParams], float64) Kernel { return nil }

func TestDefineKernelValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kernel  string
		params  []Param
		factory Factory[testParams]
		want    error
	}{
		{"empty name", "", nil, identityFactory, errEmptyKernelName},
		{"nil factory", "K", nil, nil, errNilFactory},
		{"duplicate", "K", []Param{NewParam("A", 0), NewParam("A", 1)}, identityFactory, ErrDuplicateParam},
		{"unnamed param", "K", []Param{NewParam("", 0)}, identityFactory, ErrInvalidParam},
		{"default below min", "K", []Param{NewParam("A", -1, WithMin(0))}, identityFactory, ErrInvalidParam},
		{"inverted range", "K", []Param{NewParam("A", 0, WithRange(1, -1))}, identityFactory, ErrInvalidParam},
		{"nan default", "K", []Param{NewParam("A", math.NaN())}, identityFactory, ErrInvalidParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DefineKernel(tt.kernel, tt.params, tt.factory)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefineMultiKernelWidth(t *testing.T) {
	t.Parallel()

	f := func(*Inputs[testParams], float64) MultiKernel { return nil }

	if _, err := DefineMultiKernel[testParams]("K", 0, nil, f); !errors.Is(err, errInvalidWidth) {
		t.Fatalf("width 0: got %v", err)
	}

	kt, err := DefineMultiKernel[testParams]("K", 3, nil, f)
	if err != nil {
		t.Fatal(err)
	}

	if kt.Width() != 3 {
		t.Fatalf("Width = %d, want 3", kt.Width())
	}
}

func TestKernelTypeLookup(t *testing.T) {
	t.Parallel()

	kt := MustDefineKernel[testParams]("K", []Param{NewParam("A", 0), NewParam("B", 1)}, identityFactory)

	id, ok := kt.Lookup("B")
	if !ok || id != 1 {
		t.Fatalf("Lookup(B) = %d, %v", id, ok)
	}

	if _, ok := kt.Lookup("C"); ok {
		t.Fatal("Lookup(C) should fail")
	}

	p, ok := kt.Param(id)
	if !ok || p.Default != 1 {
		t.Fatalf("Param(1) = %+v, %v", p, ok)
	}

	if _, ok := kt.Param(2); ok {
		t.Fatal("Param(2) should fail")
	}

	params := kt.Params()
	params[0].Name = "mutated"

	if kt.Params()[0].Name != "A" {
		t.Fatal("Params must return a copy")
	}
}

func TestRecursiveArity(t *testing.T) {
	t.Parallel()

	k := MustDefineKernel[testParams]("K", nil, identityFactory)

	for _, n := range []int{0, 1, 3} {
		children := make([]Chain, n)
		for i := range children {
			children[i] = Declare(k)
		}

		g := &Group{kind: RecursiveKind, children: children}
		if err := Validate(g); !errors.Is(err, ErrRecursiveArity) {
			t.Fatalf("%d children: got %v", n, err)
		}
	}
}

func TestParamClamp(t *testing.T) {
	t.Parallel()

	p := NewParam("A", 0, WithRange(-1, 1))

	tests := []struct {
		in, want float64
	}{
		{-2, -1},
		{0.5, 0.5},
		{3, 1},
	}

	for _, tt := range tests {
		if got := p.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if NewParam("U", 0).Bounded() {
		t.Error("unbounded param reports Bounded")
	}

	if !NewParam("M", 0, WithMax(1)).Bounded() {
		t.Error("param with max reports unbounded")
	}
}

func TestBindingString(t *testing.T) {
	t.Parallel()

	for b, want := range map[Binding]string{
		Constant:         "constant",
		Variable:         "variable",
		CallbackVariable: "callback",
		Binding(9):       "unknown",
	} {
		if got := b.String(); got != want {
			t.Errorf("%d: got %q, want %q", b, got, want)
		}
	}
}
