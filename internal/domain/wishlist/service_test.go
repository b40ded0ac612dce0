// internal/domain/wishlist/service_test.go
package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddConflictClause_DuplicateAddBumpsUpdatedAt(t *testing.T) {
	now := time.Now().UTC()
	oc := addConflictClause(now)

	require.Len(t, oc.Columns, 2)
	assert.Equal(t, "user_id", oc.Columns[0].Name)
	assert.Equal(t, "product_id", oc.Columns[1].Name)

	assert.False(t, oc.DoNothing)
	require.Len(t, oc.DoUpdates, 1)
	assert.Equal(t, "updated_at", oc.DoUpdates[0].Column.Name)
	assert.Equal(t, now, oc.DoUpdates[0].Value)
}
