package draft

import "github.com/SylphxAI/Pura/owner"

// Produce is the untyped engine described in 4.4-4.6: it drafts base,
// runs recipe against the draft exactly once, and either discards the
// draft (recipe returned an error, nothing is published) or finalizes it.
// An unmodified recipe yields base back by identity.
//
// Go favours explicit error returns over the exceptions the source
// material raises recipe failures through; Produce keeps that shape
// rather than requiring callers to recover from a panic.
func Produce(base any, recipe func(*Draft) error) (any, error) {
	d := newDraft(owner.New(), base)
	if err := recipe(d); err != nil {
		return nil, err
	}
	if !d.observablyModified() {
		return base, nil
	}
	return d.finalize(), nil
}

// ProduceTyped is the generic convenience wrapper the facade exposes:
// same engine, typed at the call site so recipes don't need a type
// assertion to get back T.
func ProduceTyped[T any](base T, recipe func(*Draft) error) (T, error) {
	out, err := Produce(base, recipe)
	if err != nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}
