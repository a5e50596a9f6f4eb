package dataset

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/hupe1980/lloyd/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `# x, y
1, 2
3,4

-5, 6
`
	pts, err := Decode(strings.NewReader(input), ParseInt)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	assert.Equal(t, []int64{1, 2}, pts[0].Coords())
	assert.Equal(t, []int64{3, 4}, pts[1].Coords())
	assert.Equal(t, []int64{-5, 6}, pts[2].Coords())
}

func TestDecode_Empty(t *testing.T) {
	pts, err := Decode(strings.NewReader(""), ParseFloat)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("ragged", func(t *testing.T) {
		_, err := Decode(strings.NewReader("1,2\n3\n"), ParseInt)
		assert.ErrorIs(t, err, ErrRaggedRow)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := Decode(strings.NewReader("1,2\n3,x\n"), ParseInt)
		require.Error(t, err)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, 2, perr.Column)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("float in int column", func(t *testing.T) {
		_, err := Decode(strings.NewReader("1.5\n"), ParseInt)
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestEncodeDecode(t *testing.T) {
	pts := []point.Point[float64]{
		point.New(1.5, -2.0),
		point.New(0.0, 1e-3),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pts))
	assert.Equal(t, "1.5,-2\n0,0.001\n", buf.String())

	got, err := Decode(&buf, ParseFloat)
	require.NoError(t, err)
	require.Len(t, got, len(pts))
	for i := range pts {
		assert.True(t, point.Equal(pts[i], got[i]), "point %d", i)
	}
}
