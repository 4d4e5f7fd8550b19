package layout

import "github.com/gedetika/dart-pdf/content"

// InlineSpan is the closed tagged variant {Text, Widget} from §9's design
// notes: a node in the inline span tree. It is implemented only by
// *TextSpan and *WidgetSpan; merged style and effective annotation are
// always computed top-down during the visit, never stored on the node.
type InlineSpan interface {
	isInlineSpan()
}

// TextSpan is a run of text, optionally with children (text is emitted
// first, then children, in order per §3's invariant).
type TextSpan struct {
	Style      *TextStyle
	Text       *string
	Baseline   float64
	Children   []InlineSpan
	Annotation content.AnnotationBuilder
}

func (*TextSpan) isInlineSpan() {}

// WidgetSpan places an embedded Widget inline with the surrounding text.
type WidgetSpan struct {
	Style      *TextStyle
	Child      content.Widget
	Baseline   float64
	Annotation content.AnnotationBuilder
}

func (*WidgetSpan) isInlineSpan() {}

// visitLeaf is the callback the depth-first visitor delivers leaves to.
// Returning false short-circuits the remainder of the walk, per §4.2's
// visitor contract.
type visitLeaf func(leaf InlineSpan, style TextStyle, annotation content.AnnotationBuilder) bool

// walk performs the depth-first pre-order visit described in §4.2: merged
// style is the parent merged with the child's own style (nil style means
// "inherit everything"); effective annotation is the nearest non-nil one
// on the path, with a child's own annotation taking priority.
func walk(span InlineSpan, parentStyle TextStyle, parentAnnotation content.AnnotationBuilder, visit visitLeaf) bool {
	switch s := span.(type) {
	case *TextSpan:
		style := parentStyle
		if s.Style != nil {
			style = parentStyle.MergeFrom(*s.Style)
		}
		annotation := parentAnnotation
		if s.Annotation != nil {
			annotation = s.Annotation
		}
		if s.Text != nil {
			if !visit(s, style, annotation) {
				return false
			}
		}
		for _, child := range s.Children {
			if !walk(child, style, annotation, visit) {
				return false
			}
		}
		return true

	case *WidgetSpan:
		style := parentStyle
		if s.Style != nil {
			style = parentStyle.MergeFrom(*s.Style)
		}
		annotation := parentAnnotation
		if s.Annotation != nil {
			annotation = s.Annotation
		}
		return visit(s, style, annotation)
	}
	return true
}
