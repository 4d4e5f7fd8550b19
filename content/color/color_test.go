package color

import (
	"reflect"
	"testing"
)

func TestGrayOperator(t *testing.T) {
	g := Gray(0.5)
	if got := g.Operator(false); got != "g" {
		t.Errorf("got %q", got)
	}
	if got := g.Operator(true); got != "G" {
		t.Errorf("got %q", got)
	}
	if got := g.Components(); !reflect.DeepEqual(got, []float64{0.5}) {
		t.Errorf("got %v", got)
	}
}

func TestRGBOperatorAndComponents(t *testing.T) {
	c := RGB{R: 1, G: 0.5, B: 0}
	if got := c.Operator(false); got != "rg" {
		t.Errorf("got %q", got)
	}
	if got := c.Operator(true); got != "RG" {
		t.Errorf("got %q", got)
	}
	if got := c.Components(); !reflect.DeepEqual(got, []float64{1, 0.5, 0}) {
		t.Errorf("got %v", got)
	}
}

func TestCMYKOperatorAndComponents(t *testing.T) {
	c := CMYK{C: 0.1, M: 0.2, Y: 0.3, K: 0.4}
	if got := c.Operator(false); got != "k" {
		t.Errorf("got %q", got)
	}
	if got := c.Operator(true); got != "K" {
		t.Errorf("got %q", got)
	}
	if got := c.Components(); !reflect.DeepEqual(got, []float64{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("got %v", got)
	}
}
