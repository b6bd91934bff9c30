package app

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard is the desktop clipboard shared with other programs.
type SystemClipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// osClipboard reaches the desktop clipboard through xclip, xsel,
// wl-clipboard, pbcopy or the Windows API.
type osClipboard struct{}

// NewSystemClipboard returns the desktop clipboard.
func NewSystemClipboard() SystemClipboard { return osClipboard{} }

func (osClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrNoClipboard
	}
	return clipboard.ReadAll()
}

func (osClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}
