package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seqgo/sequence"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"gob", "json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	levels := []sequence.Level[string]{
		{
			sequence.Single("a").WithSupport(4),
			sequence.Single("b").WithSupport(2),
		},
		{
			sequence.NewPattern([]string{"a"}, []string{"b"}).WithSupport(2),
		},
	}

	for _, c := range []Codec{Gob{}, JSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(levels)
			require.NoError(t, err)

			var got []sequence.Level[string]
			require.NoError(t, c.Unmarshal(data, &got))
			assert.Equal(t, levels, got)
		})
	}
}

func TestUnmarshalGarbage(t *testing.T) {
	for _, c := range []Codec{Gob{}, JSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var v []sequence.Level[string]
			assert.Error(t, c.Unmarshal([]byte("not a payload"), &v))
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "gob", Default.Name())
}
