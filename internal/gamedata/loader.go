package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := Decode(content, &result); err != nil {
		return result, fmt.Errorf("%s: %w", filename, err)
	}
	return result, nil
}

// Decode unmarshals raw table JSON. It is split out so tables can come
// from somewhere other than the embedded files.
func Decode[T any](content []byte, out *T) error {
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}
