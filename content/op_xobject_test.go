package content

import (
	"strings"
	"testing"
)

func TestDrawImageWrapsInSaveRestore(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawImage(fakeXObject{w: 100, h: 50}, 0, 0, 200, 100, OrientTopLeft)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "q" || lines[len(lines)-1] != "Q" {
		t.Errorf("expected DrawImage to be wrapped in q/Q, got %q", out)
	}
	if !strings.Contains(out, "Do") {
		t.Errorf("expected a Do operator, got %q", out)
	}
}

func TestDrawImageRejectsUnknownOrientation(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawImage(fakeXObject{w: 10, h: 10}, 0, 0, 10, 10, ImageOrientation(99))
	if e.Err == nil {
		t.Fatal("expected an error for an unknown orientation")
	}
}

func TestDrawXObjectOmitsOrientationWrapper(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawXObject(fakeXObject{w: 10, h: 10})
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if strings.Contains(out, "cm") || strings.Contains(out, "q") {
		t.Errorf("expected a bare Do with no cm/q wrapper, got %q", out)
	}
}
