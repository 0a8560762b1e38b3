package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone_EncodesByName(t *testing.T) {
	tests := []struct {
		tone Tone
		want string
	}{
		{TonePositive, `"tone":"positive"`},
		{ToneWarning, `"tone":"warning"`},
		{ToneCritical, `"tone":"critical"`},
	}
	for _, tt := range tests {
		t.Run(tt.tone.String(), func(t *testing.T) {
			data, err := json.Marshal(HealthStatus{Status: "Concerning", Tone: tt.tone})
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}
