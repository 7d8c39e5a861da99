// Package content provides the landing screen copy deck. A bundled deck is
// embedded in the binary; users can override individual fields by placing a
// content.toml in the config directory.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed deck/default.toml
var embeddedDeck []byte

// Deck is the copy rendered by the landing screen.
type Deck struct {
	Headline    string   `toml:"headline"`
	Subheadline string   `toml:"subheadline"`
	Words       []string `toml:"words"`
	Bubbles     []Bubble `toml:"bubbles"`
}

// Bubble is one line of the decorative chat conversation.
type Bubble struct {
	From string `toml:"from"` // visitor or angel
	Text string `toml:"text"`
}

var defaultDeck = mustParse(embeddedDeck)

func mustParse(data []byte) Deck {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		panic("content: bundled deck is invalid: " + err.Error())
	}
	return d
}

// Default returns the bundled copy deck.
func Default() Deck {
	return defaultDeck
}

// Load returns the deck at path layered over the bundled one. A missing
// file yields the bundled deck; a present but invalid file is an error.
func Load(path string) (Deck, error) {
	deck := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return deck, nil
		}
		return Deck{}, err
	}

	if err := toml.Unmarshal(data, &deck); err != nil {
		return Deck{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := deck.Validate(); err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	return deck, nil
}

// Validate checks that the deck can drive the hero section.
func (d Deck) Validate() error {
	if len(d.Words) == 0 {
		return errors.New("words must not be empty")
	}
	if d.Headline == "" {
		return errors.New("headline must not be empty")
	}
	return nil
}
