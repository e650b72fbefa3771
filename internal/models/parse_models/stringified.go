package parse_models

import "encoding/json"

// Stringified marks a field the backend expects as a JSON-encoded string
// inside the surrounding document. The create-tour schema stores several
// arrays this way (itinerary, guidelines, pickup points), so the double
// serialization is made explicit in the type instead of being hidden in
// ad-hoc string building.
type Stringified[T any] struct {
	Value T
}

func Stringify[T any](v T) Stringified[T] {
	return Stringified[T]{Value: v}
}

func (s Stringified[T]) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(s.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

func (s *Stringified[T]) UnmarshalJSON(data []byte) error {
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	return json.Unmarshal([]byte(inner), &s.Value)
}
