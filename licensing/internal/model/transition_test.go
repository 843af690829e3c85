package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from, to BatchStatus
		wantErr  string
	}{
		{from: BatchCreated, to: BatchSent},
		{from: BatchSent, to: BatchReceived},
		{from: BatchSent, to: BatchSent, wantErr: "batch can only be set to ENVIADO from CRIADO, current status is ENVIADO"},
		{from: BatchReceived, to: BatchSent, wantErr: "batch can only be set to ENVIADO from CRIADO, current status is RECEBIDO"},
		{from: BatchCreated, to: BatchReceived, wantErr: "batch can only be set to RECEBIDO from ENVIADO, current status is CRIADO"},
		{from: BatchSent, to: BatchCreated, wantErr: "batch status cannot be changed to CRIADO"},
	}
	for _, tt := range tests {
		err := CheckTransition(tt.from, tt.to)
		if tt.wantErr == "" {
			require.NoError(t, err)
			continue
		}
		require.EqualError(t, err, tt.wantErr)
	}
}
