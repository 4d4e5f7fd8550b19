package layout

import (
	"testing"

	"github.com/gedetika/dart-pdf/content"
)

func TestWalkMergesStyleTopDownAndInheritsAnnotation(t *testing.T) {
	childText := "child"
	var seenSizes []float64
	var seenAnnotations int

	parentStyle := &TextStyle{FontSize: 10}
	childStyle := &TextStyle{Color: nil} // no FontSize override: inherited
	root := &TextSpan{
		Style:      parentStyle,
		Annotation: stubAnnotation{},
		Children: []InlineSpan{
			&TextSpan{Style: childStyle, Text: &childText},
		},
	}

	walk(root, TextStyle{}, nil, func(leaf InlineSpan, style TextStyle, annotation content.AnnotationBuilder) bool {
		seenSizes = append(seenSizes, style.FontSize)
		if annotation != nil {
			seenAnnotations++
		}
		return true
	})

	if len(seenSizes) != 1 || seenSizes[0] != 10 {
		t.Errorf("expected the child to inherit FontSize 10, got %v", seenSizes)
	}
	if seenAnnotations != 1 {
		t.Errorf("expected the child to inherit the parent's annotation, got %d hits", seenAnnotations)
	}
}

func TestWalkShortCircuitsOnFalseReturn(t *testing.T) {
	a, b := "a", "b"
	root := &TextSpan{Children: []InlineSpan{
		&TextSpan{Text: &a},
		&TextSpan{Text: &b},
	}}

	visited := 0
	walk(root, TextStyle{}, nil, func(leaf InlineSpan, style TextStyle, annotation content.AnnotationBuilder) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("expected the walk to stop after the first leaf, visited %d", visited)
	}
}

type stubAnnotation struct{}

func (stubAnnotation) Build(ctx any, rect Rect) {}
