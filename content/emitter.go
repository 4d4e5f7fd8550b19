// Package content implements the content-stream emitter: it appends PDF
// content-stream operators to a byte buffer, tracking graphics-state and
// text-object nesting discipline the way a page's content stream requires.
//
// The emitter never touches the PDF object graph (no xref, no indirect
// references, no document catalog) — it only ever writes the operator
// bytes that go *inside* a single content stream, plus the small amount of
// bookkeeping (resource names, CTM stack) needed to do that correctly.
package content

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gedetika/dart-pdf/geometry"
	"github.com/gedetika/dart-pdf/pdferr"
)

// objectType tracks which content-stream object the emitter is currently
// inside, mirroring the small state machine a page's content stream goes
// through (page level, inside a path, inside a text object).
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClip
)

func (t objectType) String() string {
	switch t {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClip:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", t)
	}
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
	pairTypeBMC                    // BDC/BMC ... EMC
	pairTypeBX                     // BX ... EX
)

// graphicsContext is the data carried on the save/restore stack. It holds
// only what §3's data model calls out explicitly (the CTM); emitted text
// and color state is tracked separately on Emitter itself, the same split
// the teacher's own Writer/State types make between "things cm touches"
// and "everything else q/Q also saves".
type graphicsContext struct {
	ctm geometry.CTM
}

func (g graphicsContext) clone() graphicsContext {
	return graphicsContext{ctm: g.ctm}
}

// Emitter owns a byte buffer and the stack of graphics contexts behind it.
// A zero Emitter is not usable; construct one with NewEmitter.
type Emitter struct {
	buf *bytes.Buffer
	Err error

	current objectType
	stack   []graphicsContext
	ctx     graphicsContext

	nesting []pairType

	page Page
	res  *resourceSet

	// text state, tracked outside the save/restore stack per §4.1's
	// drawString/setFont contract.
	font        Font
	fontSize    float64
	charSpace   float64
	wordSpace   float64
	hScale      float64 // Tz, percent/100
	leading     float64
	rise        float64
	renderMode  int
	lastColor   Color
	haveColor   bool
}

// NewEmitter creates an emitter writing into its own internal buffer. page
// is the resource-registration collaborator (§6's Page interface); it may
// be nil for tests that only check emitted bytes and never reference a
// named resource.
func NewEmitter(page Page) *Emitter {
	return &Emitter{
		buf:    &bytes.Buffer{},
		current: objPage,
		ctx:    graphicsContext{ctm: geometry.Identity},
		page:   page,
		res:    newResourceSet(),
		hScale: 1,
	}
}

// Bytes returns the content stream produced so far.
func (e *Emitter) Bytes() []byte { return e.buf.Bytes() }

// CTM returns the current transformation matrix.
func (e *Emitter) CTM() geometry.CTM { return e.ctx.ctm }

// isValid checks that the emitter is in one of the allowed object states
// and has not already failed; on mismatch it records a *pdferr.Error and
// returns false, following the teacher's fail-sticky Writer.Err pattern.
func (e *Emitter) isValid(op string, allowed objectType) bool {
	if e.Err != nil {
		return false
	}
	if e.current&allowed != 0 {
		return true
	}
	e.Err = pdferr.New(pdferr.Unsupported, op, fmt.Errorf("unexpected state %q", e.current))
	return false
}

func (e *Emitter) fail(kind pdferr.Kind, op string, err error) {
	if e.Err == nil {
		e.Err = pdferr.New(kind, op, err)
	}
}

func (e *Emitter) writeln(parts ...string) {
	if e.Err != nil {
		return
	}
	for i, p := range parts {
		if i > 0 {
			e.buf.WriteByte(' ')
		}
		e.buf.WriteString(p)
	}
	e.buf.WriteByte('\n')
}

// format renders x using the canonical shortest round-trip decimal the
// numeric policy requires: no locale, no scientific notation, trailing
// zeros trimmed, finite values only.
func format(x float64) string {
	if !isFinite(x) {
		panic("content: non-finite number")
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func isFinite(x float64) bool {
	return x == x && x-x == 0 // rejects NaN and ±Inf without importing math here
}

func (e *Emitter) coord(x float64) string { return format(x) }

// checkFinite records an InvalidArgument error and returns false if x is
// not finite, matching §7's InvalidArgument kind for non-finite coordinates.
func (e *Emitter) checkFinite(op string, xs ...float64) bool {
	for _, x := range xs {
		if !isFinite(x) {
			e.fail(pdferr.InvalidArgument, op, fmt.Errorf("non-finite value %v", x))
			return false
		}
	}
	return true
}

// SaveContext implements the "q" operator: push a clone of the current
// graphics context.
func (e *Emitter) SaveContext() {
	if !e.isValid("SaveContext", objPage|objText) {
		return
	}
	e.nesting = append(e.nesting, pairTypeQ)
	e.stack = append(e.stack, e.ctx.clone())
	e.writeln("q")
}

// RestoreContext implements the "Q" operator. Per §7, popping with an
// empty stack is a silent no-op — it is not reported as a StackUnderflow
// error, even though the general nesting-pair discipline (mismatched
// BT/BDC pairs) is still checked below.
func (e *Emitter) RestoreContext() {
	if e.Err != nil {
		return
	}
	if len(e.stack) == 0 {
		return
	}
	if len(e.nesting) == 0 || e.nesting[len(e.nesting)-1] != pairTypeQ {
		e.fail(pdferr.StackUnderflow, "RestoreContext", fmt.Errorf("no matching SaveContext"))
		return
	}
	e.nesting = e.nesting[:len(e.nesting)-1]

	n := len(e.stack) - 1
	e.ctx = e.stack[n]
	e.stack = e.stack[:n]
	e.writeln("Q")
}

// BeginText implements "BT".
func (e *Emitter) BeginText() {
	if !e.isValid("BeginText", objPage) {
		return
	}
	e.current = objText
	e.nesting = append(e.nesting, pairTypeBT)
	e.writeln("BT")
}

// EndText implements "ET".
func (e *Emitter) EndText() {
	if !e.isValid("EndText", objText) {
		return
	}
	if len(e.nesting) == 0 || e.nesting[len(e.nesting)-1] != pairTypeBT {
		e.fail(pdferr.StackUnderflow, "EndText", fmt.Errorf("no matching BeginText"))
		return
	}
	e.nesting = e.nesting[:len(e.nesting)-1]
	e.current = objPage
	e.writeln("ET")
}
