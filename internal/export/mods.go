package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ModSource is the value stored for each mod pack in mods.json.
// PackageURL is exported empty unless a previous mods.json at the same
// destination already had a link; the server operator pastes a direct
// download link after exporting.
type ModSource struct {
	PackageURL string `json:"package_url"`
}

// ModEntry is one named mod pack in a ModSet.
type ModEntry struct {
	Name   string
	Source ModSource
}

// ModSet is a JSON object whose keys keep insertion order.
type ModSet []ModEntry

// Names returns the mod pack names in order.
func (s ModSet) Names() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Name
	}
	return out
}

// MarshalJSON encodes the set as an object in insertion order.
func (s ModSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Name); err != nil {
			return nil, fmt.Errorf("encode mod name: %w", err)
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(e.Source); err != nil {
			return nil, fmt.Errorf("encode mod %q: %w", e.Name, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping key order. A repeated key
// keeps its first position and its last value.
func (s *ModSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("mods: expected object, got %v", tok)
	}

	var out ModSet
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("mods: expected key, got %v", tok)
		}
		var src ModSource
		if err := dec.Decode(&src); err != nil {
			return fmt.Errorf("mods: decode %q: %w", name, err)
		}
		if i, dup := index[name]; dup {
			out[i].Source = src
			continue
		}
		index[name] = len(out)
		out = append(out, ModEntry{Name: name, Source: src})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if out == nil {
		out = ModSet{}
	}
	*s = out
	return nil
}

// ModsDocument is the content of mods.json.
type ModsDocument struct {
	Mods ModSet `json:"mods"`
}

// WithURLsFrom returns a copy of d where every mod pack without a
// package_url takes the one old has for the same name. Packs only in old
// are not added.
func (d ModsDocument) WithURLsFrom(old ModsDocument) ModsDocument {
	urls := make(map[string]string, len(old.Mods))
	for _, e := range old.Mods {
		urls[e.Name] = e.Source.PackageURL
	}
	out := make(ModSet, len(d.Mods))
	for i, e := range d.Mods {
		if e.Source.PackageURL == "" {
			e.Source.PackageURL = urls[e.Name]
		}
		out[i] = e
	}
	return ModsDocument{Mods: out}
}
