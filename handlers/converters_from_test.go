package handlers

import (
	"testing"

	"zonekeeper/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromZoneNameParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "eu-west", want: "eu-west"},
		{name: "escaped", raw: "zone%20a", want: "zone a"},
		{name: "trimmed", raw: "%20local%20", want: "local"},
		{name: "blank", raw: "%20", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "bad escape", raw: "%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromZoneNameParam(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
