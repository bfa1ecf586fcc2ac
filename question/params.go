package question

import (
	"fmt"
	"sort"
)

// Params is the raw caller-supplied parameter mapping for one question
// instantiation: parameter name → primitive domain value. A nil or empty
// Params selects generate mode (see BuildSpec).
type Params map[string]any

// ParamView wraps a Params and records which keys have been read, so that
// after validation the framework can report every key the validator never
// looked at. Validators receive a ParamView and read exclusively through
// Get (or a typed helper such as Int).
//
// A view is created fresh per validation attempt and discarded afterwards;
// it holds a defensive copy, so later mutation of the source Params cannot
// be observed.
//
// Invariant: a key absent from the copy can never be marked read — Get
// marks only on success, and marking twice is a no-op.
type ParamView struct {
	values map[string]any
	read   map[string]struct{}
}

// NewParamView copies params into a fresh view with an empty read-set.
//
// Complexity: O(len(params)) time and space.
func NewParamView(params Params) *ParamView {
	values := make(map[string]any, len(params))
	for k, v := range params {
		values[k] = v
	}

	return &ParamView{
		values: values,
		read:   make(map[string]struct{}, len(params)),
	}
}

// Get returns the value stored under key and marks the key as read.
// Reading the same key twice is allowed and keeps it marked.
//
// Errors:
//   - ErrMissingParam — key is absent from the underlying mapping
//     (the key is NOT marked read in that case).
func (v *ParamView) Get(key string) (any, error) {
	value, ok := v.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	v.read[key] = struct{}{}

	return value, nil
}

// Int is Get plus an integer type check. The key counts as consumed even
// when the type check fails — the caller did supply it, it is just invalid.
//
// Errors:
//   - ErrMissingParam — key absent.
//   - ErrParamDomain  — value present but not an int.
func (v *ParamView) Int(key string) (int, error) {
	value, err := v.Get(key)
	if err != nil {
		return 0, err
	}
	n, ok := value.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be an int, got %T", ErrParamDomain, key, value)
	}

	return n, nil
}

// Unused returns the keys present in the underlying mapping that were never
// passed to Get, sorted for deterministic reporting. Pure: it does not
// mutate the view and may be called repeatedly.
//
// Complexity: O(n log n) in the number of stored keys.
func (v *ParamView) Unused() []string {
	unused := make([]string, 0, len(v.values))
	for k := range v.values {
		if _, ok := v.read[k]; !ok {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)

	return unused
}
