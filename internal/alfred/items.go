// Package alfred holds the launcher's script filter schema.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects one of the two item layouts the workflow has shipped.
type Format int

const (
	// FormatStructured carries a uid and a structured alternate action that copies the code.
	FormatStructured Format = iota
	// FormatLegacy repeats the subtitle as the alternate action and has no uid.
	FormatLegacy
)

func (f Format) String() string {
	switch f {
	case FormatStructured:
		return "structured"
	case FormatLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a config value to a Format. Empty means structured.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "structured":
		return FormatStructured, nil
	case "legacy":
		return FormatLegacy, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want structured or legacy)", s)
	}
}

// Icon points the launcher at an image file.
type Icon struct {
	Path string `json:"path"`
}

// Mod overrides arg and subtitle while a modifier key is held.
type Mod struct {
	Arg      string `json:"arg,omitempty"`
	Subtitle string `json:"subtitle"`
}

// Item is one row of the result list.
type Item struct {
	UID      string         `json:"uid,omitempty"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Arg      string         `json:"arg"`
	Icon     *Icon          `json:"icon,omitempty"`
	Mods     map[string]Mod `json:"mods,omitempty"`
}

// Payload is the JSON document placed in Item.Arg.
type Payload struct {
	Unicode string `json:"unicode"`
	Code    string `json:"code"`
}

// Encode renders p as the compact JSON string the workflow passes along.
func (p Payload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding payload for %s: %w", p.Code, err)
	}
	return string(b), nil
}

// Items is the top-level container read by the launcher.
type Items struct {
	Items []Item `json:"items"`
}

// NewItems wraps items, never producing a null list.
func NewItems(items ...Item) Items {
	if items == nil {
		items = []Item{}
	}
	return Items{Items: items}
}

// Write serializes the container as one line of JSON.
func (it Items) Write(w io.Writer) error {
	if it.Items == nil {
		it.Items = []Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(it); err != nil {
		return fmt.Errorf("writing items: %w", err)
	}
	return nil
}
