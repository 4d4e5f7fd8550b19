package content

import "fmt"

// category identifies which resource-dictionary section a registered
// object belongs to, mirroring table 7.8.3 of the PDF spec the way the
// teacher's resourceCategory enum does.
type category byte

const (
	catFont category = iota + 1
	catXObject
	catShading
	catPattern
	catExtGState
	catProperties
	catColorSpace
)

func (c category) prefix() string {
	switch c {
	case catFont:
		return "F"
	case catXObject:
		return "X"
	case catShading:
		return "S"
	case catPattern:
		return "P"
	case catExtGState:
		return "E"
	case catProperties:
		return "M"
	case catColorSpace:
		return "C"
	default:
		panic("content: invalid resource category")
	}
}

type catRes struct {
	cat category
	res any
}

// resourceSet allocates and caches per-category resource names. Names are
// generated lazily and registration is idempotent: re-registering the
// same object returns the previously assigned name without allocating a
// new one, matching §5's "registration is idempotent" requirement.
type resourceSet struct {
	names map[catRes]string
	used  map[category]map[string]bool
}

func newResourceSet() *resourceSet {
	return &resourceSet{
		names: make(map[catRes]string),
		used:  make(map[category]map[string]bool),
	}
}

func (r *resourceSet) register(cat category, obj any) string {
	key := catRes{cat, obj}
	if name, ok := r.names[key]; ok {
		return name
	}
	inUse := r.used[cat]
	if inUse == nil {
		inUse = make(map[string]bool)
		r.used[cat] = inUse
	}
	prefix := cat.prefix()
	var name string
	for k := len(inUse) + 1; ; k++ {
		name = fmt.Sprintf("%s%d", prefix, k)
		if !inUse[name] {
			break
		}
	}
	inUse[name] = true
	r.names[key] = name
	return name
}
