package components

import (
	"strings"

	"liquido-calc/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NumericEntry is a single-line entry that only accepts digits and the two
// decimal separators. Typed and pasted characters outside that set are dropped.
type NumericEntry struct {
	widget.Entry

	// OnEscape is called when Escape is pressed while the entry has focus
	OnEscape func()
}

// NewNumericEntry creates an empty amount entry
func NewNumericEntry() *NumericEntry {
	e := &NumericEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("0,00")
	return e
}

// TypedRune drops characters that cannot be part of an amount
func (e *NumericEntry) TypedRune(r rune) {
	if !models.IsAmountRune(r) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedKey routes Escape to OnEscape and leaves the rest to the entry
func (e *NumericEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		if e.OnEscape != nil {
			e.OnEscape()
		}
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut filters clipboard content before pasting it
func (e *NumericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}
	if paste.Clipboard == nil {
		return
	}

	for _, r := range FilterAmount(paste.Clipboard.Content()) {
		e.Entry.TypedRune(r)
	}
}

// FilterAmount keeps only the characters an amount may contain
func FilterAmount(text string) string {
	return strings.Map(func(r rune) rune {
		if models.IsAmountRune(r) {
			return r
		}
		return -1
	}, text)
}
