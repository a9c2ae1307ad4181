package sortedlist

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array in ascending order.
// An empty list encodes as [].
func (l *SortedList[T]) MarshalJSON() ([]byte, error) {
	entries := l.Entries()
	if entries == nil {
		entries = []T{}
	}

	return json.Marshal(entries)
}

// UnmarshalJSON adds every element of a JSON array to the list. Input order
// does not matter. Existing elements are kept.
func (l *SortedList[T]) UnmarshalJSON(data []byte) error {
	var values []T

	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decoding sorted list: %w", err)
	}

	l.AddAll(values...)

	return nil
}

// MarshalYAML encodes the list as a YAML sequence in ascending order.
func (l *SortedList[T]) MarshalYAML() (any, error) {
	entries := l.Entries()
	if entries == nil {
		entries = []T{}
	}

	return entries, nil
}

// UnmarshalYAML adds every element of a YAML sequence to the list.
// Existing elements are kept.
func (l *SortedList[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T

	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("decoding sorted list: %w", err)
	}

	l.AddAll(values...)

	return nil
}
