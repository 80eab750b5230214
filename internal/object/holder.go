package object

// Holder is a shared, possibly-nil reference to a value on the heap.
// A nil *Holder is the "no holder" state: it represents the same
// emptiness as the language's None value, and IsTrue/Print treat it
// identically to one. Two holders built by Share from the same Own
// alias the same underlying cell, so mutating the value through one
// (relevant once Value is a *Instance, whose fields are themselves
// mutable) is observed through the other.
//
// The spec's §9 discusses reference counting and cycle collection for
// this sharing; in Go the runtime's garbage collector already owns
// that problem (cycles included), so Holder need not — and does not —
// implement manual refcounting. Own/Share exist to name the two
// lifetimes the language distinguishes (new allocation vs. handing an
// existing value to a child scope), not to manage memory by hand.
type Holder struct {
	Value Value
}

// Own allocates a new holder around v.
func Own(v Value) *Holder {
	return &Holder{Value: v}
}

// Share returns h itself: a non-owning reference to the same cell,
// used when an entity hands itself to a child scope (e.g. binding
// self in a method call frame) without needing a new allocation.
func Share(h *Holder) *Holder {
	return h
}

// IsNone reports whether h is the "no holder" / None state: either a
// nil holder or one wrapping an explicit None value.
func (h *Holder) IsNone() bool {
	return h == nil || h.Value.Kind() == NoneKind
}

// IsTrue coerces a holder to a boolean, treating "no holder" as false.
func IsTrue(h *Holder) bool {
	if h == nil {
		return false
	}
	return h.Value.IsTrue()
}

// Print renders h's built-in print form: "None" for a nil holder,
// otherwise the held value's Print(). This does not attempt __str__
// dispatch on class instances; callers needing that use the
// evaluator's Stringify.
func Print(h *Holder) string {
	if h == nil {
		return "None"
	}
	return h.Value.Print()
}
