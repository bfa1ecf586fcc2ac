// Package catalog flattens a question registry snapshot into a
// deterministic, serializable manifest.
//
// A surrounding application layer (an HTTP API, a CLI, a course builder)
// needs to enumerate the available question generators without reaching
// into registry internals. Build produces a listing ordered by canonical
// topic order and then by name, so repeated builds over the same registry
// are byte-identical when marshaled — safe to diff, cache, or publish.
//
// The manifest carries identifiers only (topic wire value, question name);
// constructing questions stays with the registry. Marshaling to YAML and
// JSON is provided; transport and storage remain the caller's concern.
package catalog
