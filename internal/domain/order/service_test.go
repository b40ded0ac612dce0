// internal/domain/order/service_test.go
package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"exact multiple", 40, 20, 2},
		{"remainder adds a page", 45, 20, 3},
		{"single short page", 5, 20, 1},
		{"no orders", 0, 20, 0},
		{"limit of one", 3, 1, 3},
		{"zero limit guarded", 10, 0, 0},
		{"negative limit guarded", 10, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.total, tt.limit))
		})
	}
}

func TestOrderDetailJSON_NullTrackingWhenLookupMisses(t *testing.T) {
	detail := OrderDetail{
		Order: Order{
			ID:       "ord-1",
			Delivery: Delivery{Method: "nova_poshta", TTN: "204501234567"},
		},
	}

	data, err := json.Marshal(&detail)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Contains(t, payload, "tracking")
	assert.Equal(t, "null", string(payload["tracking"]))
}

func TestOrderDetailJSON_TrackingRecordPresent(t *testing.T) {
	detail := OrderDetail{
		Order: Order{
			ID:       "ord-1",
			Delivery: Delivery{TTN: "204501234567"},
		},
		Tracking: &TTNTracking{TTN: "204501234567", Status: "In transit"},
	}

	data, err := json.Marshal(&detail)
	require.NoError(t, err)

	var payload struct {
		Tracking *TTNTracking `json:"tracking"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	require.NotNil(t, payload.Tracking)
	assert.Equal(t, "In transit", payload.Tracking.Status)
}

func TestOrderDetailJSON_NoTTNOmitsTracking(t *testing.T) {
	detail := OrderDetail{
		Order: Order{ID: "ord-1"},
	}

	data, err := json.Marshal(&detail)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotContains(t, payload, "tracking")
}
