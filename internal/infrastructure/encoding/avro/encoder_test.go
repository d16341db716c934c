package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "farm_hub/internal/domain/order"
)

func TestOrderPlacedEncoder_EncodesNotification(t *testing.T) {
	enc, err := NewOrderPlacedEncoder()
	require.NoError(t, err)

	n := domain.Notification{
		OrderID:      "2024-05-01T08:30:00.000Z",
		ProductName:  "Tomatoes",
		Quantity:     2,
		Total:        "1000.00",
		CustomerName: "Ada",
		Phone:        "+2348000000000",
		Address:      "12 Lagos Rd",
		OrderedAt:    "5/1/2024, 8:30:00 AM",
	}

	binary, err := enc.EncodeNative(ToOrderPlacedNative("Akanbi Farm Hub", n))
	require.NoError(t, err)
	require.NotEmpty(t, binary)

	decoded, err := enc.DecodeNative(binary)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T08:30:00.000Z", decoded["order_id"])
	assert.Equal(t, int64(2), decoded["quantity"])
	assert.Equal(t, "1000.00", decoded["total"])
	assert.Equal(t, "", decoded["supplier_name"])
	assert.Equal(t, "Pending", decoded["status"])
}

func TestEncoder_EncodeNative_MissingField(t *testing.T) {
	enc, err := NewOrderPlacedEncoder()
	require.NoError(t, err)

	_, err = enc.EncodeNative(map[string]interface{}{"order_id": "x"})

	assert.Error(t, err)
}

func TestNewEncoder_InvalidSchema(t *testing.T) {
	_, err := NewEncoder(`{"type":"record"}`)

	assert.Error(t, err)
}
