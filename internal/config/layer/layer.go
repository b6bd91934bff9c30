// Package layer merges configuration maps in precedence order.
//
// Each source of settings (built-in defaults, the user's config file,
// environment variables, command-line flags) contributes one Layer.
// Later layers override earlier ones key by key; nested maps merge.
package layer

// Source identifies where a layer's settings came from.
type Source uint8

// Sources in increasing precedence.
const (
	SourceDefaults Source = iota
	SourceFile
	SourceEnv
	SourceFlags
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Layer is one set of settings from a single source.
type Layer struct {
	Name   string
	Source Source
	Data   map[string]any
}

// New creates a layer holding a deep copy of data.
func New(name string, source Source, data map[string]any) Layer {
	return Layer{Name: name, Source: source, Data: Clone(data)}
}

// Empty reports whether the layer sets nothing.
func (l Layer) Empty() bool {
	return len(l.Data) == 0
}

// Merge folds layers in order into a fresh map. Empty layers are skipped.
func Merge(layers ...Layer) map[string]any {
	out := make(map[string]any)
	for _, l := range layers {
		if l.Empty() {
			continue
		}
		out = DeepMerge(out, l.Data)
	}
	return out
}

// Names returns the names of the non-empty layers, in order.
func Names(layers ...Layer) []string {
	var names []string
	for _, l := range layers {
		if !l.Empty() {
			names = append(names, l.Name)
		}
	}
	return names
}
