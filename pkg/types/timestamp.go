package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format for record timestamps: ISO-8601
// without a zone designator, matching the store file layout.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with the store's JSON representation.
// Values are stored in UTC at second precision.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Second)}
}

// MarshalJSON renders the timestamp in TimestampLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

// UnmarshalJSON parses TimestampLayout, falling back to RFC3339 so that
// zone-qualified timestamps from other tools still round-trip.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range []string{TimestampLayout, time.RFC3339} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parsing timestamp %q: unrecognized format", s)
}
