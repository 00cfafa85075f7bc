package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctSessionCount(t *testing.T) {
	t.Run("sessões repetidas não inflam a contagem", func(t *testing.T) {
		// 5 linhas, 2 sessões distintas
		ids := []string{"a", "b", "a", "a", "b"}
		assert.Equal(t, int64(2), DistinctSessionCount(ids))
	})

	t.Run("lista vazia", func(t *testing.T) {
		assert.Equal(t, int64(0), DistinctSessionCount(nil))
	})

	t.Run("todas distintas", func(t *testing.T) {
		ids := []string{"a", "b", "c"}
		assert.Equal(t, int64(3), DistinctSessionCount(ids))
	})
}
