package question

import "fmt"

// Registry maps (topic, name) to a Definition, rejecting collisions.
//
// A Registry is explicitly constructed and owned by the composition root;
// there is no package-level singleton. Its lifecycle has two phases:
// a single-writer registration phase (all Register calls complete before
// the registry is shared), then a read-only phase in which Lookup and
// Snapshot are safe for concurrent use. The registry performs no locking
// of its own.
type Registry struct {
	byTopic map[Topic]map[string]Definition
}

// NewRegistry returns an empty registry with a bucket per known Topic.
func NewRegistry() *Registry {
	byTopic := make(map[Topic]map[string]Definition, len(allTopics))
	for _, t := range allTopics {
		byTopic[t] = make(map[string]Definition)
	}

	return &Registry{byTopic: byTopic}
}

// Register inserts def under (def.Topic, def.Name). Registration is
// irreversible: there is no unregister, and an occupied key is never
// overwritten.
//
// Errors:
//   - ErrBadDefinition — def.Topic outside the closed vocabulary,
//     empty def.Name, or nil def.New.
//   - ErrDuplicate — (def.Topic, def.Name) already registered.
//
// Complexity: O(1).
func (r *Registry) Register(def Definition) error {
	if !def.Topic.Valid() {
		return fmt.Errorf("%w: %q declares unknown topic %q", ErrBadDefinition, def.Name, def.Topic)
	}
	if def.Name == "" {
		return fmt.Errorf("%w: empty name for topic %q", ErrBadDefinition, def.Topic)
	}
	if def.New == nil {
		return fmt.Errorf("%w: %q/%q has a nil constructor", ErrBadDefinition, def.Topic, def.Name)
	}
	if _, taken := r.byTopic[def.Topic][def.Name]; taken {
		return fmt.Errorf("%w: %q already present under topic %q", ErrDuplicate, def.Name, def.Topic)
	}
	r.byTopic[def.Topic][def.Name] = def

	return nil
}

// Lookup returns the Definition registered under (topic, name).
//
// Errors:
//   - ErrUnknownQuestion — nothing registered under that key.
//
// Complexity: O(1).
func (r *Registry) Lookup(topic Topic, name string) (Definition, error) {
	def, ok := r.byTopic[topic][name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q under topic %q", ErrUnknownQuestion, name, topic)
	}

	return def, nil
}

// Snapshot returns a defensive deep copy of the full (topic, name) →
// Definition mapping. Mutating the returned maps cannot affect the live
// registry.
//
// Complexity: O(n) in the number of registered definitions.
func (r *Registry) Snapshot() map[Topic]map[string]Definition {
	out := make(map[Topic]map[string]Definition, len(r.byTopic))
	for topic, defs := range r.byTopic {
		bucket := make(map[string]Definition, len(defs))
		for name, def := range defs {
			bucket[name] = def
		}
		out[topic] = bucket
	}

	return out
}

// Len returns the number of registered definitions across all topics.
func (r *Registry) Len() int {
	total := 0
	for _, defs := range r.byTopic {
		total += len(defs)
	}

	return total
}
