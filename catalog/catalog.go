package catalog

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/quizium/mathgen/question"
)

// Entry identifies one registered question generator.
type Entry struct {
	Topic string `json:"topic" yaml:"topic"`
	Name  string `json:"name" yaml:"name"`
}

// Manifest is the full deterministic listing of a registry.
type Manifest struct {
	Questions []Entry `json:"questions" yaml:"questions"`
}

// Build flattens reg into a Manifest: topics in canonical vocabulary
// order, names sorted within each topic. Build reads a defensive snapshot,
// so a manifest never aliases live registry state.
//
// Complexity: O(n log n) in the number of registered definitions.
func Build(reg *question.Registry) Manifest {
	snap := reg.Snapshot()
	entries := make([]Entry, 0, reg.Len())
	for _, topic := range question.Topics() {
		names := make([]string, 0, len(snap[topic]))
		for name := range snap[topic] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			entries = append(entries, Entry{Topic: topic.String(), Name: name})
		}
	}

	return Manifest{Questions: entries}
}

// YAML marshals the manifest via gopkg.in/yaml.v3.
func (m Manifest) YAML() ([]byte, error) { return yaml.Marshal(m) }

// JSON marshals the manifest via encoding/json.
func (m Manifest) JSON() ([]byte, error) { return json.Marshal(m) }
