package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse reads a dictionary from its JSON form, a flat object mapping category
// names to keyword lists. Object key order is semantically significant, so the
// document is walked token by token instead of decoding into a map.
func Parse(r io.Reader) (Dictionary, error) {
	decoder := json.NewDecoder(r)

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: read dictionary: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("catalog: dictionary must be a JSON object")
	}

	var dictionary Dictionary
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: read category name: %w", err)
		}
		name, ok := token.(string)
		if !ok {
			return nil, errors.New("catalog: category name must be a string")
		}

		var keywords []string
		if err = decoder.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("catalog: keywords for %q: %w", name, err)
		}

		dictionary = append(dictionary, Category{Name: name, Keywords: keywords})
	}

	if _, err = decoder.Token(); err != nil {
		return nil, fmt.Errorf("catalog: read closing brace: %w", err)
	}

	return dictionary, nil
}
