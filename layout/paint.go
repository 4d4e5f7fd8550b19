package layout

import "github.com/gedetika/dart-pdf/content"

// Paint drives the emitter over result's decorations and spans, per the
// three-step paint pass contract in §4.2. ctx is passed through
// unmodified to Widget/AnnotationBuilder/BackgroundDecoration callbacks;
// boxOrigin is the layout box's page-absolute top-left corner.
func (r Result) Paint(ctx any, e *content.Emitter, boxOrigin Point) {
	r.paintBackgrounds(ctx, e, boxOrigin)
	r.paintSpans(ctx, e, boxOrigin)
	r.paintForegrounds(ctx, e, boxOrigin)
}

func (r Result) decorationRect(d DecorationRun) Rect {
	var box Rect
	for i := d.StartSpan; i <= d.EndSpan && i < len(r.Spans); i++ {
		box = box.Union(spanRect(r.Spans[i]))
	}
	return box
}

func spanRect(sp PositionedSpan) Rect {
	switch s := sp.(type) {
	case *Word:
		return Rect{X: s.Offset.X, Y: s.Offset.Y, Width: s.Metrics.AdvanceWidth, Height: s.Metrics.Height}
	case *EmbeddedWidget:
		b := s.Widget.Box()
		return Rect{X: s.Offset.X, Y: s.Offset.Y, Width: b.Width, Height: b.Height}
	}
	return Rect{}
}

// paintBackgrounds implements step 1: annotations and backgrounds at
// each decoration's merged, page-absolute rectangle.
func (r Result) paintBackgrounds(ctx any, e *content.Emitter, boxOrigin Point) {
	for _, d := range r.Decorations {
		rect := translate(r.decorationRect(d), boxOrigin)
		if d.Annotation != nil {
			d.Annotation.Build(ctx, rect)
		}
		if d.Style.Background != nil {
			d.Style.Background.Paint(ctx, e, rect)
			if d.Style.Color != nil {
				e.SetFillColor(d.Style.Color)
			}
		}
	}
}

// paintSpans implements step 2: draw each positioned span, switching
// fill color only when it actually changes.
func (r Result) paintSpans(ctx any, e *content.Emitter, boxOrigin Point) {
	var lastColor content.Color
	var haveColor bool
	for _, sp := range r.Spans {
		style := spanStyle(sp)
		if style.Color != nil && (!haveColor || lastColor != style.Color) {
			e.SetFillColor(style.Color)
			lastColor = style.Color
			haveColor = true
		}
		point := Point{X: boxOrigin.X + spanRect(sp).X, Y: boxOrigin.Y + spanRect(sp).Y}
		switch s := sp.(type) {
		case *Word:
			e.DrawString(s.Style.Font, s.Style.FontSize, s.Text, point.X, point.Y, content.FontOptions{})
		case *EmbeddedWidget:
			box := s.Widget.Box()
			box.X, box.Y = point.X, point.Y
			s.Widget.SetBox(box)
			s.Widget.Paint(ctx, e)
		}
	}
}

func spanStyle(sp PositionedSpan) TextStyle {
	switch s := sp.(type) {
	case *Word:
		return s.Style
	case *EmbeddedWidget:
		return s.Style
	}
	return TextStyle{}
}

// paintForegrounds implements step 3: underline/overline/line-through
// strokes, per §4.2's base-offset table and the double-line variant.
func (r Result) paintForegrounds(ctx any, e *content.Emitter, boxOrigin Point) {
	for _, d := range r.Decorations {
		if d.Style.Decoration == 0 {
			continue
		}
		box := translate(r.decorationRect(d), boxOrigin)
		strokeColor := d.Style.DecorationColor
		if strokeColor == nil {
			strokeColor = d.Style.Color
		}
		if strokeColor != nil {
			e.SetStrokeColor(strokeColor)
		}
		scale := r.Scale
		if scale == 0 {
			scale = 1
		}
		thickness := d.Style.DecorationThickness * d.Style.FontSize * scale * 0.05
		e.SetLineWidth(thickness)

		font := fontOf(d)
		descent := 0.0
		if font != nil {
			descent = font.Descent()
		}

		draw := func(base, sign float64) {
			y := box.Bottom() + base
			e.MoveTo(box.Left(), y)
			e.LineTo(box.Right(), y)
			e.StrokePath(false)
			if d.Style.DecorationStyle == DecorationStyleDouble {
				s := -0.15 * d.Style.FontSize * scale * d.Style.DecorationThickness
				y2 := y + sign*s
				e.MoveTo(box.Left(), y2)
				e.LineTo(box.Right(), y2)
				e.StrokePath(false)
			}
		}

		if d.Style.Decoration.Has(DecorationUnderline) {
			draw(-descent*d.Style.FontSize*scale/2, 1)
		}
		if d.Style.Decoration.Has(DecorationOverline) {
			draw(d.Style.FontSize*scale, -1)
		}
		if d.Style.Decoration.Has(DecorationLineThrough) {
			draw((1-descent)*d.Style.FontSize*scale/2, 1)
		}
	}
}

func fontOf(d DecorationRun) content.Font { return d.Style.Font }

func translate(r Rect, by Point) Rect {
	return Rect{X: r.X + by.X, Y: r.Y + by.Y, Width: r.Width, Height: r.Height}
}
