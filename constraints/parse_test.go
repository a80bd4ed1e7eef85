package constraints

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseContainer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "empty", input: "", want: 0},
		{name: "wrap", input: "wrap3", want: 3},
		{name: "whitespace inside token", input: "wrap 1", want: 1},
		{name: "uppercase", input: "WRAP12", want: 12},
		{name: "missing number", input: "wrap", wantErr: ErrMalformedNumber},
		{name: "bad number", input: "wrapx", wantErr: ErrMalformedNumber},
		{name: "unknown", input: "grow", wantErr: ErrUnknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContainer(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseContainer(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseContainer(%q) unexpected error: %v", tt.input, err)
			}
			if got.AutoWrapAfter != tt.want {
				t.Errorf("AutoWrapAfter = %d, want %d", got.AutoWrapAfter, tt.want)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	axis, err := ParseColumns("[grow, fill][ center ][right][]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if axis.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", axis.Len())
	}

	wantGrow := []bool{true, false, false, false, false}
	for i, want := range wantGrow {
		if got := axis.Grows(i); got != want {
			t.Errorf("Grows(%d) = %v, want %v", i, got, want)
		}
	}

	wantAlign := []Alignment{Fill, Center, End, Start, Start}
	for i, want := range wantAlign {
		if got := axis.DefaultAlignment(i); got != want {
			t.Errorf("DefaultAlignment(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestParseColumns_SingleGroupAppliesEverywhere(t *testing.T) {
	axis := MustParseColumns("[grow, center]")

	for _, i := range []int{0, 1, 7} {
		if !axis.Grows(i) {
			t.Errorf("Grows(%d) = false, want true", i)
		}
		if got := axis.DefaultAlignment(i); got != Center {
			t.Errorf("DefaultAlignment(%d) = %v, want center", i, got)
		}
	}
}

func TestParseRows(t *testing.T) {
	axis, err := ParseRows("[top][grow,bottom]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Grows(0) || !axis.Grows(1) {
		t.Errorf("grow flags = %v,%v, want false,true", axis.Grows(0), axis.Grows(1))
	}
	if axis.DefaultAlignment(1) != End {
		t.Errorf("DefaultAlignment(1) = %v, want end", axis.DefaultAlignment(1))
	}
}

func TestParseAxis_RejectsOtherAxisSides(t *testing.T) {
	if _, err := ParseColumns("[top]"); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("ParseColumns([top]) error = %v, want ErrUnknownToken", err)
	}
	if _, err := ParseRows("[left]"); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("ParseRows([left]) error = %v, want ErrUnknownToken", err)
	}
}

func TestParseAxis_EmptyString(t *testing.T) {
	axis, err := ParseColumns("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Grows(0) {
		t.Error("empty constraints should not grow")
	}
	if axis.DefaultAlignment(0) != Start {
		t.Error("empty constraints should default to start")
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		input string
		defX  Alignment
		defY  Alignment
		want  Component
	}{
		{input: "", defX: Center, defY: End, want: Component{X: Center, Y: End}},
		{input: "fill", want: Component{X: Fill, Y: Fill}},
		{input: "fillx", defY: Center, want: Component{X: Fill, Y: Center}},
		{input: "filly", want: Component{X: Start, Y: Fill}},
		{input: "center", want: Component{X: Center, Y: Center}},
		{input: "centerx, bottom", want: Component{X: Center, Y: End}},
		{input: "centery,right", want: Component{X: End, Y: Center}},
		{input: "fill, left, top", want: Component{X: Start, Y: Start}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComponent(tt.input, tt.defX, tt.defY)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseComponent(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseComponent_UnknownToken(t *testing.T) {
	_, err := ParseComponent("fill, sideways", Start, Start)
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("error = %v, want ErrUnknownToken", err)
	}
}
