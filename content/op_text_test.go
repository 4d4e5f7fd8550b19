package content

import "testing"

func TestDrawStringBundlesTextObject(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawString(fakeFont{name: "F1"}, 12, "Hi", 10, 20, FontOptions{})
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	want := "BT\n10 20 Td\n/F1 12 Tf\n[(Hi)] TJ\nET\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestShowTextWithoutFontFails(t *testing.T) {
	e := NewEmitter(nil)
	e.BeginText()
	e.ShowText("x")
	if e.Err == nil {
		t.Fatal("expected an error when showing text without a font set")
	}
}

func TestSetFontOnlyEmitsChangedOptionalOperators(t *testing.T) {
	e := NewEmitter(nil)
	e.BeginText()
	cs := 1.5
	e.SetFont(fakeFont{name: "F"}, 10, FontOptions{CharSpace: &cs})
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	want := "/F1 10 Tf\n1.5 Tc\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestShowTextKernedValidatesKernCount(t *testing.T) {
	e := NewEmitter(nil)
	e.BeginText()
	e.SetFont(fakeFont{name: "F"}, 10, FontOptions{})
	e.ShowTextKerned([]string{"a", "b"}, []float64{1, 2})
	if e.Err == nil {
		t.Fatal("expected an error for a mismatched kern count")
	}
}
