package keymap

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dshills/gridsketch/internal/input/key"
)

// Keymap is a named list of bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings. Later bindings for the same
	// key win.
	Bindings []Binding

	// Source indicates where this keymap was defined: "default" or a
	// config file path.
	Source string
}

// NewKeymap creates an empty keymap.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add appends a binding.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// FromMap builds a keymap from spec-to-action pairs, as found in config
// files. Bindings are ordered by key spec so the result is deterministic.
func FromMap(name string, m map[string]string) *Keymap {
	km := NewKeymap(name)
	specs := make([]string, 0, len(m))
	for spec := range m {
		specs = append(specs, spec)
	}
	slices.Sort(specs)
	for _, spec := range specs {
		km.Add(spec, m[spec])
	}
	return km
}

// Validate checks that every binding parses and names a known action.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if !IsKnownAction(b.Action) {
			return fmt.Errorf("binding %d (%s): unknown action %q", i, b.Keys, b.Action)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// Overlay returns a new keymap with other's bindings after k's, so that
// other wins on conflicts. A nil other returns a copy of k.
func (k *Keymap) Overlay(other *Keymap) *Keymap {
	out := k.Clone()
	if other == nil {
		return out
	}
	out.Bindings = append(out.Bindings, other.Bindings...)
	if other.Source != "" {
		out.Source = other.Source
	}
	return out
}

// Clone creates a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	return &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		Bindings: slices.Clone(k.Bindings),
	}
}

// ParsedKeymap is a keymap ready for lookup.
type ParsedKeymap struct {
	name     string
	bindings map[key.Event]ParsedBinding
}

// Parse parses all bindings. Bindings to ActionNone remove the key.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		name:     k.Name,
		bindings: make(map[key.Event]ParsedBinding, len(k.Bindings)),
	}
	for _, b := range k.Bindings {
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Keys, err)
		}
		ev = ev.Normalize()
		if b.Action == ActionNone {
			delete(parsed.bindings, ev)
			continue
		}
		parsed.bindings[ev] = ParsedBinding{Binding: b, Event: ev}
	}
	return parsed, nil
}

// MustParse is Parse for keymaps known to be valid.
func (k *Keymap) MustParse() *ParsedKeymap {
	p, err := k.Parse()
	if err != nil {
		panic("keymap " + k.Name + ": " + err.Error())
	}
	return p
}

// Name returns the keymap name.
func (p *ParsedKeymap) Name() string { return p.name }

// Lookup returns the binding ev triggers.
func (p *ParsedKeymap) Lookup(ev key.Event) (ParsedBinding, bool) {
	b, ok := p.bindings[ev.Normalize()]
	return b, ok
}

// Len returns the number of bound keys.
func (p *ParsedKeymap) Len() int { return len(p.bindings) }

// Bindings returns the bindings sorted by action then key.
func (p *ParsedKeymap) Bindings() []ParsedBinding {
	out := make([]ParsedBinding, 0, len(p.bindings))
	for _, b := range p.bindings {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b ParsedBinding) int {
		return cmp.Or(
			cmp.Compare(a.Action, b.Action),
			cmp.Compare(a.Event.String(), b.Event.String()),
		)
	})
	return out
}
