package layout

import (
	"math"
	"strings"

	"github.com/gedetika/dart-pdf/content"
)

// ParagraphStyle carries the per-paragraph knobs the line-breaking
// algorithm needs beyond what lives on an individual span's TextStyle.
type ParagraphStyle struct {
	TextAlign     TextAlign
	TextDirection TextDirection
	// SoftWrap makes every explicit "\n" in a text span start a new line,
	// per §4.2 step 4; without it the logical lines continue on the same
	// line. Wrapping at whitespace when a word would exceed MaxWidth
	// happens either way.
	SoftWrap bool
	// TightBounds selects glyph ink extents (top/bottom) over font
	// metrics (ascent/descent) for line-height accounting, per the
	// "Tight bounds" glossary entry.
	TightBounds bool
	// MaxLines caps the number of emitted lines; zero means unlimited.
	MaxLines int
	// Scale is the textScale factor multiplying fontSize throughout the
	// algorithm's measurement formulas.
	Scale float64
}

// Engine is the InlineLayoutEngine. Its only setting is the ArabicShaper
// applied to RTL text; with a nil Shaper, RTL text is laid out as given.
// The per-paragraph knobs live on ParagraphStyle, whose zero value means
// DirectionLTR, AlignLeft, no soft wrap, and scale 1.
type Engine struct {
	Shaper content.ArabicShaper
}

// Result is what a Layout call produces: the flat span and decoration
// arrays, the line descriptors tying them together, the finished box,
// and whether any line needed to wrap.
type Result struct {
	Spans       []PositionedSpan
	Decorations []DecorationRun
	Lines       []LineDescriptor
	Box         Rect
	Overflow    bool
	// Scale is the paragraph's textScale factor, carried forward so a
	// later Paint call can reproduce the same fontSize*textScale
	// formulas the layout pass used for decoration thickness and
	// offsets.
	Scale float64
}

// breaker holds the line-breaking algorithm's running state, matching
// §4.2's state list: offsetX, offsetY, spanStart, spanCount, lineTopMin,
// lineBottomMax, overflow.
type breaker struct {
	eng   *Engine
	style ParagraphStyle
	cons  BoxConstraints

	spans       []PositionedSpan
	decorations []DecorationRun
	lines       []LineDescriptor

	offsetX, offsetY         float64
	spanStart, spanCount     int
	lineTopMin, lineBottomMax float64
	overflow                 bool
	terminated               bool

	// lastLineSpacing is the LineSpacing of the most recently laid-out
	// span's style, carried across calls so the final flush after the
	// walk completes (which has no style of its own in scope) still
	// advances offsetY by the right amount.
	lastLineSpacing float64
}

func (e *Engine) scale(style ParagraphStyle) float64 {
	if style.Scale == 0 {
		return 1
	}
	return style.Scale
}

// Layout walks root and produces positioned spans, decoration runs and a
// finished box, per §4.2.
func (e *Engine) Layout(root InlineSpan, baseStyle TextStyle, style ParagraphStyle, cons BoxConstraints) Result {
	b := &breaker{eng: e, style: style, cons: cons}
	b.resetLineExtent()

	walk(root, baseStyle, nil, func(leaf InlineSpan, merged TextStyle, annotation content.AnnotationBuilder) bool {
		if b.terminated {
			return false
		}
		switch s := leaf.(type) {
		case *TextSpan:
			b.layoutText(*s.Text, merged, s.Baseline, annotation)
		case *WidgetSpan:
			b.layoutWidget(s.Child, merged, s.Baseline, annotation)
		}
		return !b.terminated
	})

	if !b.terminated && b.spanCount > 0 {
		b.flushLine(false, b.lastLineSpacing)
	}

	finalWidth := b.finalWidth()
	for i := range b.lines {
		b.realign(i, finalWidth, len(b.lines)-1 == i)
	}

	return Result{
		Spans:       b.spans,
		Decorations: b.decorations,
		Lines:       b.lines,
		Box:         Rect{Width: finalWidth, Height: b.offsetY},
		Overflow:    b.overflow,
		Scale:       b.scale(),
	}
}

func (b *breaker) resetLineExtent() {
	b.lineTopMin = math.Inf(1)
	b.lineBottomMax = math.Inf(-1)
}

func (b *breaker) scale() float64 { return b.eng.scale(b.style) }

func (b *breaker) spaceMetrics(style TextStyle) content.FontMetrics {
	s := b.scale()
	ls := style.LetterSpacing / (style.FontSize * s)
	m := style.Font.StringMetrics(" ", ls)
	return m.Scale(style.FontSize * s)
}

// appendDecoration implements the merge-on-append rule from §3/§9: a new
// single-span decoration is appended unless the previous run's (style,
// annotation) pair is structurally equal, in which case its end index is
// extended instead.
func (b *breaker) appendDecoration(style TextStyle, annotation content.AnnotationBuilder, spanIndex int) {
	if n := len(b.decorations); n > 0 {
		prev := &b.decorations[n-1]
		if prev.EndSpan == spanIndex-1 && prev.Style.Equal(style) && prev.Annotation == annotation {
			prev.EndSpan = spanIndex
			return
		}
	}
	b.decorations = append(b.decorations, DecorationRun{
		Style: style, Annotation: annotation, StartSpan: spanIndex, EndSpan: spanIndex,
	})
}

func (b *breaker) maxWidth() float64 {
	if b.cons.MaxWidth > 0 {
		return b.cons.MaxWidth
	}
	return math.Inf(1)
}

// flushLine closes out the current line: records a LineDescriptor whose
// WordsWidth is the current offsetX, rewinds offsetX, advances offsetY by
// the line's height plus spacing, and resets the running extent.
// lineSpacing is the active style's LineSpacing, per §4.2 step 3's
// "offsetY += lineHeight + lineSpacing". For an empty line at a soft-wrap
// boundary (emptyLineFallback with no spans) offsetY is left unchanged
// here; layoutText then adds the fallback ascent+descent+lineSpacing per
// the documented Open Question in §9.
func (b *breaker) flushLine(emptyLineFallback bool, lineSpacing float64) {
	b.lines = append(b.lines, LineDescriptor{
		FirstSpanIndex: b.spanStart,
		SpanCount:      b.spanCount,
		BaselineDrop:   b.lineTopMin,
		WordsWidth:     b.offsetX,
		TextDirection:  b.style.TextDirection,
		TextAlign:      b.style.TextAlign,
	})

	if emptyLineFallback && b.spanCount == 0 {
		// An empty line has no extent of its own; the caller advances
		// offsetY by space.ascent+space.descent+lineSpacing instead.
		b.offsetY += 0
	} else {
		lineHeight := b.lineBottomMax - b.lineTopMin
		if math.IsInf(lineHeight, 0) || math.IsInf(-lineHeight, 0) {
			lineHeight = 0
		}
		b.offsetY += lineHeight + lineSpacing
	}

	b.offsetX = 0
	b.spanStart += b.spanCount
	b.spanCount = 0
	b.resetLineExtent()

	if b.style.MaxLines > 0 && len(b.lines) >= b.style.MaxLines {
		b.terminated = true
	}
	if b.offsetY > b.cons.MaxHeight && b.cons.MaxHeight > 0 {
		b.terminated = true
	}
}

func (b *breaker) updateExtent(mt, mb float64) {
	if mt < b.lineTopMin {
		b.lineTopMin = mt
	}
	if mb > b.lineBottomMax {
		b.lineBottomMax = mb
	}
}

func (b *breaker) layoutWidget(w content.Widget, style TextStyle, baseline float64, annotation content.AnnotationBuilder) {
	b.lastLineSpacing = style.LineSpacing
	scale := b.scale()
	h := style.FontSize * scale
	size := w.Layout(nil, BoxConstraints{MinHeight: h, MaxHeight: h, MaxWidth: math.Inf(1)})

	if b.offsetX+size.Width > b.maxWidth() && b.spanCount > 0 {
		b.flushLine(false, style.LineSpacing)
		b.overflow = true
		if b.terminated {
			return
		}
	}

	w.SetBox(Rect{Width: size.Width, Height: size.Height})
	spanIndex := b.spanStart + b.spanCount
	b.spans = append(b.spans, &EmbeddedWidget{
		Widget: w,
		Style:  style,
		Offset: Point{X: b.offsetX, Y: -b.offsetY + baseline*scale},
	})
	b.appendDecoration(style, annotation, spanIndex)
	b.updateExtent(baseline*scale, size.Height+baseline*scale)

	b.offsetX += size.Width
	b.spanCount++
}

func (b *breaker) layoutText(text string, style TextStyle, baseline float64, annotation content.AnnotationBuilder) {
	b.lastLineSpacing = style.LineSpacing
	if b.style.TextDirection == DirectionRTL && b.eng.Shaper != nil {
		text = b.eng.Shaper.Convert(text)
	}

	scale := b.scale()
	space := b.spaceMetrics(style)
	logicalLines := strings.Split(text, "\n")

	for li, line := range logicalLines {
		tokens := tokenize(line)
		for ti, tok := range tokens {
			if b.terminated {
				return
			}
			if tok.isSpace {
				// Between two words the run is covered by the advance
				// already added after the preceding word; a run at the
				// start or end of the logical line advances once.
				if ti == 0 || ti == len(tokens)-1 {
					b.offsetX += space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
				}
				continue
			}

			ls := style.LetterSpacing / (style.FontSize * scale)
			metrics := style.Font.StringMetrics(tok.text, ls).Scale(style.FontSize * scale)

			if b.offsetX+metrics.Width > b.maxWidth() && b.spanCount > 0 {
				b.overflow = true
				// The line's words width excludes the gap after its last word.
				b.offsetX -= space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
				b.flushLine(false, style.LineSpacing)
				if b.terminated {
					return
				}
			}

			spanIndex := b.spanStart + b.spanCount
			b.spans = append(b.spans, &Word{
				Text:    tok.text,
				Style:   style,
				Metrics: metrics,
				Offset:  Point{X: b.offsetX, Y: -b.offsetY + baseline*scale},
			})
			b.appendDecoration(style, annotation, spanIndex)

			var mt, mb float64
			if b.style.TightBounds {
				mt, mb = metrics.Top, metrics.Bottom
			} else {
				mt, mb = metrics.Descent, metrics.Ascent
			}
			b.updateExtent(mt+baseline*scale, mb+baseline*scale)

			b.offsetX += metrics.AdvanceWidth + space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
			b.spanCount++
		}

		isLastLogicalLine := li == len(logicalLines)-1
		if !isLastLogicalLine && b.style.SoftWrap {
			wasEmpty := b.spanCount == 0
			if !wasEmpty {
				b.offsetX -= space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
			}
			b.flushLine(wasEmpty, style.LineSpacing)
			if wasEmpty {
				b.offsetY += space.Ascent + space.Descent + style.LineSpacing
			}
			if b.terminated {
				return
			}
		}
	}

	// Retract the trailing word-space advance added after the last
	// token, per §4.2 step 5 and the documented Open Question: the
	// existing sign (subtract wordSpacing's contribution, add back
	// letterSpacing) is preserved as normative rather than "corrected".
	b.offsetX -= space.AdvanceWidth*style.WordSpacing - style.LetterSpacing
}

type token struct {
	text    string
	isSpace bool
}

// tokenize splits s into alternating non-whitespace and whitespace runs,
// the regex-\s-class split from §4.2 step 2. A whitespace run becomes a
// single isSpace token regardless of its length, matching the "advance
// once per run" reading of "empty token (run of whitespace)".
func tokenize(s string) []token {
	var out []token
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		start := i
		isSpace := isWhitespace(runes[i])
		for i < len(runes) && isWhitespace(runes[i]) == isSpace {
			i++
		}
		out = append(out, token{text: string(runes[start:i]), isSpace: isSpace})
	}
	return out
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func (b *breaker) finalWidth() float64 {
	if b.overflow {
		return b.cons.MaxWidth
	}
	max := b.cons.MinWidth
	for _, l := range b.lines {
		if l.WordsWidth > max {
			max = l.WordsWidth
		}
	}
	return max
}
