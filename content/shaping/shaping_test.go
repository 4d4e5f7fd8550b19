package shaping

import "testing"

func TestConvertLeavesLTROnlyTextUnchanged(t *testing.T) {
	var r BidiReorder
	got := r.Convert("Hello world")
	if got != "Hello world" {
		t.Errorf("got %q", got)
	}
}

func TestConvertLeavesAPureRTLParagraphUnchanged(t *testing.T) {
	var r BidiReorder
	// A single-direction paragraph has exactly one run: visual reordering
	// across runs has nothing to do, and within-run glyph shaping is a
	// separate, out-of-scope concern, so the text passes through as-is.
	in := "שלום"
	got := r.Convert(in)
	if got != in {
		t.Errorf("got %q want %q (unchanged)", got, in)
	}
}

func TestConvertReordersAMixedDirectionParagraph(t *testing.T) {
	var r BidiReorder
	in := "abc שלום def"
	got := r.Convert(in)
	if got == "" {
		t.Fatal("expected non-empty output")
	}
	if got == in {
		t.Errorf("expected the right-to-left run to be reordered, got %q unchanged", got)
	}
}
