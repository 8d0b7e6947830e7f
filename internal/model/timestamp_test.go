package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with zone",
			input: `"2024-03-01T10:30:00Z"`,
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset",
			input: `"2024-03-01T12:30:00+02:00"`,
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "naive ISO with microseconds",
			input: `"2024-03-01T10:30:00.123456"`,
			want:  time.Date(2024, 3, 1, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "garbage",
			input:   `"yesterday"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !ts.Equal(tt.want) {
				t.Errorf("Unmarshal() = %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

func TestTimestampStorageSortsAsText(t *testing.T) {
	early := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	late := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 1000, time.UTC))

	ev, err := early.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	lv, err := late.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if ev.(string) >= lv.(string) {
		t.Errorf("expected %q < %q", ev, lv)
	}

	var scanned Timestamp
	if err := scanned.Scan(ev); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !scanned.Equal(early.Time) {
		t.Errorf("Scan() = %v, want %v", scanned.Time, early.Time)
	}
}

func TestListingOmitsZeroTimestamp(t *testing.T) {
	data, err := json.Marshal(Listing{Title: "Loft", Price: 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if _, ok := raw["createdAt"]; ok {
		t.Error("expected createdAt to be omitted when zero")
	}
	if _, ok := raw["_id"]; ok {
		t.Error("expected _id to be omitted when empty")
	}
}
