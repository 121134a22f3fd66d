package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDevice(t *testing.T) {
	device := NewDevice("AA:BB:CC:DD:EE:FF", "key123", "ABC123")

	assert.Equal(t, "AA:BB:CC:DD:EE:FF", device.MacAddress)
	assert.Equal(t, "key123", device.APIKey)
	assert.Equal(t, "ABC123", device.FriendlyID)
	assert.False(t, device.CreatedAt.IsZero())
	assert.Nil(t, device.LastSeen)
	assert.Nil(t, device.FirmwareVersion)
	assert.Nil(t, device.BatteryVoltage)
}

func TestErrNotFound(t *testing.T) {
	err := ErrNotFound{Resource: "device", ID: "AA:BB"}

	assert.Equal(t, "device not found: AA:BB", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("other error")))
	assert.False(t, IsNotFound(nil))
}
