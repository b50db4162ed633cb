package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeGenerator_Generate(t *testing.T) {
	gen, err := NewNodeGenerator(1)
	require.NoError(t, err)
	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.Generate().Int64()
		assert.Positive(t, id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestNewNodeGenerator_NodeRange(t *testing.T) {
	_, err := NewNodeGenerator(maxNode + 1)
	assert.ErrorIs(t, err, ErrExceedNode)
	_, err = NewNodeGenerator(-1)
	assert.ErrorIs(t, err, ErrExceedNode)
}
