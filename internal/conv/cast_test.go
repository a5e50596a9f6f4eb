package conv

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    uint32
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"small", 8, 8, false},
		{"negative", -1, 0, true},
	}
	if strconv.IntSize == 64 {
		var limit uint64 = math.MaxUint32
		tests = append(tests, struct {
			name    string
			input   int
			want    uint32
			wantErr bool
		}{"max", int(limit), math.MaxUint32, false}, struct {
			name    string
			input   int
			want    uint32
			wantErr bool
		}{"too large", int(limit + 1), 0, true})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntToUint32(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
