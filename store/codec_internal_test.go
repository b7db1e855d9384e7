package store

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/automaton"
)

func TestUnmarshal_Version(t *testing.T) {
	data, err := encMode.Marshal(envelope{Version: Version + 1, Config: &automaton.Config{}})
	require.NoError(t, err)
	_, err = Unmarshal(snappy.Encode(nil, data))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	data, err = encMode.Marshal(envelope{Version: Version})
	require.NoError(t, err)
	_, err = Unmarshal(snappy.Encode(nil, data))
	assert.ErrorIs(t, err, ErrCorrupt)

	// Duplicate edges cannot come from a deterministic automaton.
	data, err = encMode.Marshal(envelope{
		Version: Version,
		Config:  &automaton.Config{},
		Edges: []automaton.Transition{
			{From: 0, Symbol: 'a', To: 0},
			{From: 0, Symbol: 'a', To: 0},
		},
	})
	require.NoError(t, err)
	_, err = Unmarshal(snappy.Encode(nil, data))
	assert.ErrorIs(t, err, ErrCorrupt)
}
