package browser

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
)

// TypeHuman types text into an element with human-like timing.
// Printable ASCII goes through Element.Type so keydown/keyup fire; other
// runes are inserted. Small random delays (50-150ms) separate keystrokes.
func TypeHuman(el *rod.Element, text string) error {
	for _, char := range text {
		var err error
		if isTypable(char) {
			err = el.Type(input.Key(char))
		} else {
			err = el.Input(string(char))
		}
		if err != nil {
			return err
		}
		time.Sleep(time.Duration(50+rand.Intn(100)) * time.Millisecond)
	}
	return nil
}

// TypeFast types text without delays. Printable ASCII still triggers
// keyboard events; text with other runes (accented country names, currency
// signs) is inserted in one go.
func TypeFast(el *rod.Element, text string) error {
	keys := make([]input.Key, 0, len(text))
	for _, char := range text {
		if !isTypable(char) {
			return el.Input(text)
		}
		keys = append(keys, input.Key(char))
	}
	return el.Type(keys...)
}

func isTypable(r rune) bool {
	return r >= ' ' && r <= '~'
}
