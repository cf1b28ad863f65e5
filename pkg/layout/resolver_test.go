package layout_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/layout"
)

var letter = annotation.Dimensions{Width: 612, Height: 792}

func textField(id string) annotation.Field {
	return annotation.Field{
		FieldID:    id,
		FieldType:  annotation.FieldTypeText,
		Position:   annotation.Position{X: 50, Y: 150, CoordinateSystem: annotation.CoordinateAbsolute},
		Dimensions: annotation.Dimensions{Width: 200, Height: 20},
		Alignment:  annotation.AlignLeft,
		FontStyle:  annotation.FontStyle{FontFamily: "Courier", FontSize: 10},
		Overflow:   annotation.OverflowTruncate,
		Padding:    &annotation.Padding{Top: 0, Right: 2, Bottom: 0, Left: 2},
		PageNumber: 1,
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestLayout_AbsoluteLeftAligned(t *testing.T) {
	resolver := layout.NewResolver()
	inst, err := resolver.Layout(textField("name"), letter, "John")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}

	approx(t, "X", inst.X, 52) // box left + left padding
	approx(t, "Y", inst.Y, 163)
	approx(t, "BoxX", inst.BoxX, 50)
	if inst.Text != "John" {
		t.Fatalf("Text = %q, want %q", inst.Text, "John")
	}
}

func TestLayout_PercentageCoordinates(t *testing.T) {
	field := textField("centered")
	field.Position = annotation.Position{X: 50, Y: 25, CoordinateSystem: annotation.CoordinatePercentage}
	field.Dimensions = annotation.Dimensions{Width: 50, Height: 2.5}

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "x")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}

	approx(t, "BoxX", inst.BoxX, 306)    // 50% of 612
	approx(t, "BoxY", inst.BoxY, 198)    // 25% of 792
	approx(t, "Width", inst.Width, 306)  // 50% of 612
	approx(t, "Height", inst.Height, 19.8)
}

func TestLayout_RightAndCenterAlignment(t *testing.T) {
	resolver := layout.NewResolver()

	// Courier at 10pt advances 6pt per character; "$95,000.00" is 10 runes.
	field := textField("wages")
	field.Position = annotation.Position{X: 450, Y: 300, CoordinateSystem: annotation.CoordinateAbsolute}
	field.Dimensions = annotation.Dimensions{Width: 100, Height: 15}
	field.Alignment = annotation.AlignRight

	inst, err := resolver.Layout(field, letter, "$95,000.00")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	approx(t, "right-aligned X", inst.X, 450+100-2-60)

	field.Alignment = annotation.AlignCenter
	inst, err = resolver.Layout(field, letter, "$95,000.00")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	approx(t, "centered X", inst.X, 450+(100-60)/2)
}

func TestLayout_CharacterSpacing(t *testing.T) {
	field := textField("ssn")
	field.CharacterSpacing = 8.5

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "123-45-6789")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}

	if len(inst.Characters) != 11 {
		t.Fatalf("placed %d characters, want 11", len(inst.Characters))
	}
	want := make([]layout.PlacedCharacter, 11)
	for i, char := range []rune("123-45-6789") {
		want[i] = layout.PlacedCharacter{Char: string(char), OffsetX: float64(i) * 8.5}
	}
	if diff := cmp.Diff(want, inst.Characters); diff != "" {
		t.Fatalf("placed characters mismatch (-want +got):\n%s", diff)
	}
	approx(t, "X", inst.X, 52)
	approx(t, "CharacterSpacing", inst.CharacterSpacing, 8.5)
}

func TestLayout_TruncateNeverExceedsPaddedBox(t *testing.T) {
	field := textField("long")
	field.Dimensions = annotation.Dimensions{Width: 50, Height: 20}

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "a very long value")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}

	usable := 50.0 - 2 - 2
	metrics := layout.CourierMetrics()
	if width := metrics.StringWidth(inst.Text, inst.Font); width > usable {
		t.Fatalf("truncated text %q is %.2f wide, exceeds padded box %.2f", inst.Text, width, usable)
	}
	if inst.Text == "a very long value" {
		t.Fatal("text was not truncated")
	}
}

func TestLayout_TruncateWithEllipsis(t *testing.T) {
	field := textField("long")
	field.Dimensions = annotation.Dimensions{Width: 50, Height: 20}

	resolver := layout.NewResolver(layout.WithEllipsis("…"))
	inst, err := resolver.Layout(field, letter, "a very long value")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if inst.Text == "" || inst.Text[len(inst.Text)-len("…"):] != "…" {
		t.Fatalf("truncated text %q does not end with ellipsis", inst.Text)
	}
}

func TestLayout_MaxLengthCap(t *testing.T) {
	field := textField("capped")
	field.MaxLength = 4

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "Jonathan")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if inst.Text != "Jona" {
		t.Fatalf("Text = %q, want %q", inst.Text, "Jona")
	}
}

func TestLayout_ShrinkReducesFontSize(t *testing.T) {
	field := textField("shrunk")
	field.Dimensions = annotation.Dimensions{Width: 50, Height: 20}
	field.Overflow = annotation.OverflowShrink

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "1234567890")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}

	// 10 chars need 6*size points; the first step size that fits 46pt is 7.5.
	approx(t, "FontSize", inst.Font.FontSize, 7.5)
	if inst.Text != "1234567890" {
		t.Fatalf("shrink truncated the text to %q", inst.Text)
	}
}

func TestLayout_ShrinkFallsBackToTruncateAtFloor(t *testing.T) {
	field := textField("tiny")
	field.Dimensions = annotation.Dimensions{Width: 16, Height: 20}
	field.Overflow = annotation.OverflowShrink

	resolver := layout.NewResolver()
	inst, err := resolver.Layout(field, letter, "123456789012345678901234567890")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	approx(t, "FontSize", inst.Font.FontSize, 4)
	if len(inst.Text) >= 30 {
		t.Fatalf("text %q was not truncated at the size floor", inst.Text)
	}
}

func TestLayout_ErrorPolicy(t *testing.T) {
	field := textField("strict")
	field.Dimensions = annotation.Dimensions{Width: 30, Height: 20}
	field.Overflow = annotation.OverflowError

	resolver := layout.NewResolver()
	_, err := resolver.Layout(field, letter, "does not fit at all")

	var layoutErr *layout.Error
	if !errors.As(err, &layoutErr) {
		t.Fatalf("error %v is not a *layout.Error", err)
	}
	if layoutErr.Kind != layout.ErrOverflow {
		t.Fatalf("error kind = %q, want %q", layoutErr.Kind, layout.ErrOverflow)
	}
	if layoutErr.FieldID != "strict" {
		t.Fatalf("error field = %q, want %q", layoutErr.FieldID, "strict")
	}
}

func TestLayout_WrapFailsFast(t *testing.T) {
	field := textField("wrapped")
	field.Dimensions = annotation.Dimensions{Width: 30, Height: 20}
	field.Overflow = annotation.OverflowWrap

	resolver := layout.NewResolver()
	_, err := resolver.Layout(field, letter, "does not fit at all")

	var layoutErr *layout.Error
	if !errors.As(err, &layoutErr) {
		t.Fatalf("error %v is not a *layout.Error", err)
	}
	if layoutErr.Kind != layout.ErrUnsupported {
		t.Fatalf("error kind = %q, want %q", layoutErr.Kind, layout.ErrUnsupported)
	}
}

func TestLayout_FitsWithoutOverflowHandling(t *testing.T) {
	field := textField("fits")
	field.Overflow = annotation.OverflowError

	inst, err := layout.NewResolver().Layout(field, letter, "short")
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if inst.Text != "short" {
		t.Fatalf("Text = %q, want %q", inst.Text, "short")
	}
}
