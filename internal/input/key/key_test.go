package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"r", NewRuneEvent('r', ModNone)},
		{"R", NewRuneEvent('R', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Ctrl+Z", NewRuneEvent('z', ModCtrl)},
		{"ctrl+shift+z", NewRuneEvent('z', ModCtrl|ModShift)},
		{"<C-z>", NewRuneEvent('z', ModCtrl)},
		{"<C-S-z>", NewRuneEvent('z', ModCtrl|ModShift)},
		{"C-y", NewRuneEvent('y', ModCtrl)},
		{"Delete", NewSpecialEvent(KeyDelete, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"Shift+Up", NewSpecialEvent(KeyUp, ModShift)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+Plus", NewRuneEvent('+', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"Hyper+x", ErrInvalidSpec},
		{"Ctrl+Bogus", ErrInvalidSpec},
		{"<Q-x>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want bool
	}{
		{"ctrl upper vs ctrl shift lower", NewRuneEvent('Z', ModCtrl), NewRuneEvent('z', ModCtrl|ModShift), true},
		{"ctrl vs ctrl shift", NewRuneEvent('z', ModCtrl), NewRuneEvent('z', ModCtrl|ModShift), false},
		{"shifted letter", NewRuneEvent('R', ModShift), NewRuneEvent('R', ModNone), true},
		{"different letters", NewRuneEvent('r', ModNone), NewRuneEvent('l', ModNone), false},
		{"special keys", NewSpecialEvent(KeyDelete, ModNone), NewSpecialEvent(KeyDelete, ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('a', ModNone).IsChar() {
		t.Error("plain 'a' should be a char")
	}
	if !NewRuneEvent('A', ModShift).IsChar() {
		t.Error("shifted 'A' should be a char")
	}
	if NewRuneEvent('z', ModCtrl).IsChar() {
		t.Error("Ctrl+z should not be a char")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Error("Enter should not be a char")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('z', ModCtrl), "Ctrl+z"},
		{NewRuneEvent('Z', ModCtrl), "Ctrl+Shift+z"},
		{NewSpecialEvent(KeyDelete, ModNone), "Delete"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('+', ModNone), "Plus"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.ev.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			back, err := Parse(got)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", got, err)
			}
			if !back.Matches(tt.ev) {
				t.Errorf("Parse(String()) = %+v, does not match %+v", back, tt.ev)
			}
		})
	}
}
