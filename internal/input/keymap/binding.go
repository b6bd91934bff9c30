package keymap

import "github.com/dshills/gridsketch/internal/input/key"

// Binding maps one key specification to an action.
type Binding struct {
	// Keys is the key specification, e.g. "r", "C-z", "Ctrl+Shift+Z".
	Keys string

	// Action is the action name, e.g. "tool.rectangle".
	Action string

	// Description is shown in help output.
	Description string

	// Category groups bindings for display.
	Category string
}

// NewBinding creates a binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with its key specification parsed.
type ParsedBinding struct {
	Binding
	Event key.Event
}

// Match reports whether ev triggers this binding.
func (pb ParsedBinding) Match(ev key.Event) bool {
	return pb.Event.Matches(ev)
}

// IsBareKey reports whether the binding fires on a plain printable key,
// which would otherwise be typed as text.
func (pb ParsedBinding) IsBareKey() bool {
	return pb.Event.IsChar()
}
