package parse_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifiedMarshal(t *testing.T) {
	doc := struct {
		Entries Stringified[[]ItineraryEntry] `json:"entries"`
	}{
		Entries: Stringify([]ItineraryEntry{{Day: "Day 1", Title: "Walk", Description: "Old town"}}),
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	// The field must be a JSON string, not a nested array.
	var outer map[string]string
	require.NoError(t, json.Unmarshal(raw, &outer))

	var entries []ItineraryEntry
	require.NoError(t, json.Unmarshal([]byte(outer["entries"]), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Day 1", entries[0].Day)
}

func TestStringifiedRoundTrip(t *testing.T) {
	original := Stringify(PickupEntry{
		Key: "hotelPickup",
		Value: PickupValue{
			CameraZoom:       15,
			PickupPointTitle: "Lobby",
		},
	})

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Stringified[PickupEntry]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original.Value, decoded.Value)
}
