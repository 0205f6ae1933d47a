package priority_test

import (
	"testing"

	"github.com/ganot/creativehub/internal/domain/priority"
	"github.com/stretchr/testify/require"
)

func TestLevelWeight(t *testing.T) {
	require.Equal(t, 1, priority.Low.Weight())
	require.Equal(t, 2, priority.Medium.Weight())
	require.Equal(t, 3, priority.High.Weight())
	require.Equal(t, 4, priority.Urgent.Weight())
	require.Equal(t, 0, priority.Level("someday").Weight())
	require.False(t, priority.Level("").Valid())
}
