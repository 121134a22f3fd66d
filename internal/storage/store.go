// Package storage provides the device directory abstraction.
package storage

import (
	"context"
	"time"
)

// Store is the interface for persistent device state.
type Store interface {
	// Device directory
	GetDevice(ctx context.Context, macAddress string) (*Device, error)
	GetDeviceByAPIKey(ctx context.Context, apiKey string) (*Device, error)
	CreateDevice(ctx context.Context, device *Device) error
	UpdateDeviceStatus(ctx context.Context, macAddress string, update StatusUpdate) error
	ListDevices(ctx context.Context) ([]*Device, error)

	// Telemetry logs (append-only)
	AppendLog(ctx context.Context, macAddress string, timestamp time.Time, data []byte) error
	ListLogs(ctx context.Context, macAddress string) ([]*LogEntry, error)

	// Screen artifact records
	SaveScreen(ctx context.Context, screen *Screen) error
	ListScreens(ctx context.Context, limit int) ([]*Screen, error)

	// Lifecycle
	Close() error
}

// Device is a provisioned e-ink device, keyed by MAC address.
type Device struct {
	MacAddress      string
	APIKey          string
	FriendlyID      string
	CreatedAt       time.Time
	LastSeen        *time.Time
	FirmwareVersion *string
	BatteryVoltage  *float64
}

// NewDevice creates a new device record.
func NewDevice(macAddress, apiKey, friendlyID string) *Device {
	return &Device{
		MacAddress: macAddress,
		APIKey:     apiKey,
		FriendlyID: friendlyID,
		CreatedAt:  time.Now().UTC(),
	}
}

// StatusUpdate carries the device fields refreshed on check-in. Nil fields
// are left untouched.
type StatusUpdate struct {
	LastSeen        *time.Time
	FirmwareVersion *string
	BatteryVoltage  *float64
}

// LogEntry is one appended telemetry record: the raw JSON blob as the device
// sent it, stamped on arrival.
type LogEntry struct {
	ID         int64
	MacAddress string
	Timestamp  time.Time
	Data       []byte
}

// Screen records a generated artifact pushed through the screens endpoint.
type Screen struct {
	ID          int64
	Filename    string
	DeviceID    *string
	ContentType string
	CreatedAt   time.Time
	FilePath    string
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}
