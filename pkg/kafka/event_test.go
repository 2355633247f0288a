package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutCompleted struct {
	CustomerID string `json:"customer_id"`
	Total      int64  `json:"total"`
}

func TestNewEvent(t *testing.T) {
	data := checkoutCompleted{CustomerID: "cust-1", Total: 6000}

	event, err := NewEvent("checkout.completed", "cust-1", "checkout", "storefront", data)

	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "checkout.completed", event.EventType)
	assert.Equal(t, "cust-1", event.AggregateID)
	assert.Equal(t, "checkout", event.AggregateType)
	assert.Equal(t, "storefront", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_RoundTrip(t *testing.T) {
	event, err := NewEvent("checkout.completed", "cust-1", "checkout", "storefront",
		checkoutCompleted{CustomerID: "cust-1", Total: 6000})
	require.NoError(t, err)
	event.WithCorrelationID("corr-1")

	raw, err := event.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, got.EventID)
	assert.Equal(t, "corr-1", got.CorrelationID)

	var payload checkoutCompleted
	require.NoError(t, got.UnmarshalData(&payload))
	assert.Equal(t, "cust-1", payload.CustomerID)
	assert.Equal(t, int64(6000), payload.Total)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("checkout.completed", "cust-1", "checkout", "storefront", make(chan int))
	assert.Error(t, err)
}
