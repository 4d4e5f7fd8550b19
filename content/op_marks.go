package content

import (
	"fmt"

	"github.com/gedetika/dart-pdf/pdferr"
)

// This file implements marked-content and compatibility sections: BDC/BMC
// ... EMC, and BX ... EX. These are not named in §4.1's operation table,
// but they are ambient content-stream plumbing every emitter of this
// shape carries alongside path/text operators, not a feature scoped out
// by any Non-goal.

// BeginMarkedContent implements "BDC" (with a properties dictionary) or
// "BMC" (without one, when properties is nil).
func (e *Emitter) BeginMarkedContent(tag string, properties any) {
	if !e.isValid("BeginMarkedContent", objPage|objText) {
		return
	}
	e.nesting = append(e.nesting, pairTypeBMC)
	if properties == nil {
		e.writeln("/"+tag, "BMC")
		return
	}
	name := e.res.register(catProperties, properties)
	e.writeln("/"+tag, "/"+name, "BDC")
}

// EndMarkedContent implements "EMC".
func (e *Emitter) EndMarkedContent() {
	if e.Err != nil {
		return
	}
	if len(e.nesting) == 0 || e.nesting[len(e.nesting)-1] != pairTypeBMC {
		e.fail(pdferr.StackUnderflow, "EndMarkedContent", fmt.Errorf("no matching BeginMarkedContent"))
		return
	}
	e.nesting = e.nesting[:len(e.nesting)-1]
	e.writeln("EMC")
}

// BeginCompatibility implements "BX".
func (e *Emitter) BeginCompatibility() {
	if !e.isValid("BeginCompatibility", objPage|objText) {
		return
	}
	e.nesting = append(e.nesting, pairTypeBX)
	e.writeln("BX")
}

// EndCompatibility implements "EX".
func (e *Emitter) EndCompatibility() {
	if e.Err != nil {
		return
	}
	if len(e.nesting) == 0 || e.nesting[len(e.nesting)-1] != pairTypeBX {
		e.fail(pdferr.StackUnderflow, "EndCompatibility", fmt.Errorf("no matching BeginCompatibility"))
		return
	}
	e.nesting = e.nesting[:len(e.nesting)-1]
	e.writeln("EX")
}
