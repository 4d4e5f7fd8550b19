package layout

// realign applies horizontal alignment/justification and, for RTL lines,
// mirrors span positions, per §4.2's "Realignment & justification".
func (b *breaker) realign(lineIndex int, totalWidth float64, isLast bool) {
	line := b.lines[lineIndex]
	first, count := line.FirstSpanIndex, line.SpanCount
	if count == 0 {
		return
	}
	spans := b.spans[first : first+count]

	// y-normalization: shift every span so the line's top aligns with
	// offsetY, applied regardless of horizontal alignment.
	for _, sp := range spans {
		setOffsetY(sp, offsetY(sp)-line.BaselineDrop)
	}

	delta := b.alignDelta(line, totalWidth, isLast)
	if delta != 0 {
		for _, sp := range spans {
			setOffsetX(sp, offsetX(sp)+delta)
		}
	}
	if line.TextAlign == AlignJustify && !isLast && count > 1 {
		perSpan := (totalWidth - line.WordsWidth) / float64(count-1)
		for i, sp := range spans {
			setOffsetX(sp, offsetX(sp)+perSpan*float64(i))
		}
	}

	if line.TextDirection == DirectionRTL {
		for _, sp := range spans {
			x := offsetX(sp)
			w := spanWidth(sp)
			setOffsetX(sp, totalWidth-(x+w)-delta)
		}
	}
}

// alignDelta computes the single shift applied to every span before any
// justify-specific per-span accumulation, per §4.2: left -> 0, right ->
// totalWidth-wordsWidth, center -> half that, justify (non-last,
// multi-span) -> 0 here since its distribution is per-span, justify
// (last line, or single span) -> falls through to left (0).
func (b *breaker) alignDelta(line LineDescriptor, totalWidth float64, isLast bool) float64 {
	switch line.TextAlign {
	case AlignRight:
		return totalWidth - line.WordsWidth
	case AlignCenter:
		return (totalWidth - line.WordsWidth) / 2
	case AlignJustify:
		if isLast || line.SpanCount <= 1 {
			return 0
		}
		return 0
	default: // AlignLeft
		return 0
	}
}

func offsetX(sp PositionedSpan) float64 {
	switch s := sp.(type) {
	case *Word:
		return s.Offset.X
	case *EmbeddedWidget:
		return s.Offset.X
	}
	return 0
}

func offsetY(sp PositionedSpan) float64 {
	switch s := sp.(type) {
	case *Word:
		return s.Offset.Y
	case *EmbeddedWidget:
		return s.Offset.Y
	}
	return 0
}

func setOffsetX(sp PositionedSpan, x float64) {
	switch s := sp.(type) {
	case *Word:
		s.Offset.X = x
	case *EmbeddedWidget:
		s.Offset.X = x
	}
}

func setOffsetY(sp PositionedSpan, y float64) {
	switch s := sp.(type) {
	case *Word:
		s.Offset.Y = y
	case *EmbeddedWidget:
		s.Offset.Y = y
	}
}

func spanWidth(sp PositionedSpan) float64 { return sp.width() }
