package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimestampAcceptsServerFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"python isoformat", `"2025-03-14T09:26:53.589793"`},
		{"isoformat without fraction", `"2025-03-14T09:26:53"`},
		{"rfc3339", `"2025-03-14T09:26:53Z"`},
		{"space separated", `"2025-03-14 09:26:53"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			require.Equal(t, 2025, ts.Year())
			require.Equal(t, 14, ts.Day())
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestTimestampEmptyString(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	require.True(t, ts.IsZero())
}

func TestTimestampRoundTrip(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14T09:26:53Z"`), &ts))

	out, err := json.Marshal(ts)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(out, &back))
	require.True(t, ts.Equal(back.Time))
}
