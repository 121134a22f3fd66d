// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/byos/trmnl-go/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Device methods

func (s *Store) CreateDevice(ctx context.Context, device *storage.Device) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO devices (mac_address, api_key, friendly_id, created_at, last_seen, firmware_version, battery_voltage)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, device.MacAddress, device.APIKey, device.FriendlyID, device.CreatedAt,
		device.LastSeen, device.FirmwareVersion, device.BatteryVoltage)
	return err
}

func (s *Store) GetDevice(ctx context.Context, macAddress string) (*storage.Device, error) {
	return s.getDeviceWhere(ctx, "mac_address = ?", macAddress)
}

func (s *Store) GetDeviceByAPIKey(ctx context.Context, apiKey string) (*storage.Device, error) {
	return s.getDeviceWhere(ctx, "api_key = ?", apiKey)
}

func (s *Store) getDeviceWhere(ctx context.Context, where, arg string) (*storage.Device, error) {
	var device storage.Device
	err := s.db.QueryRowContext(ctx, `
		SELECT mac_address, api_key, friendly_id, created_at, last_seen, firmware_version, battery_voltage
		FROM devices WHERE `+where,
		arg).Scan(&device.MacAddress, &device.APIKey, &device.FriendlyID, &device.CreatedAt,
		&device.LastSeen, &device.FirmwareVersion, &device.BatteryVoltage)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound{Resource: "device", ID: arg}
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *Store) ListDevices(ctx context.Context) ([]*storage.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mac_address, api_key, friendly_id, created_at, last_seen, firmware_version, battery_voltage
		FROM devices ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*storage.Device
	for rows.Next() {
		var device storage.Device
		if err := rows.Scan(&device.MacAddress, &device.APIKey, &device.FriendlyID, &device.CreatedAt,
			&device.LastSeen, &device.FirmwareVersion, &device.BatteryVoltage); err != nil {
			return nil, err
		}
		devices = append(devices, &device)
	}
	return devices, rows.Err()
}

// UpdateDeviceStatus refreshes check-in fields on an existing device. It is a
// silent no-op for unknown devices.
func (s *Store) UpdateDeviceStatus(ctx context.Context, macAddress string, update storage.StatusUpdate) error {
	var fields []string
	var values []any

	if update.LastSeen != nil {
		fields = append(fields, "last_seen = ?")
		values = append(values, *update.LastSeen)
	}
	if update.FirmwareVersion != nil {
		fields = append(fields, "firmware_version = ?")
		values = append(values, *update.FirmwareVersion)
	}
	if update.BatteryVoltage != nil {
		fields = append(fields, "battery_voltage = ?")
		values = append(values, *update.BatteryVoltage)
	}
	if len(fields) == 0 {
		return nil
	}

	query := "UPDATE devices SET "
	for i, f := range fields {
		if i > 0 {
			query += ", "
		}
		query += f
	}
	query += " WHERE mac_address = ?"
	values = append(values, macAddress)

	_, err := s.db.ExecContext(ctx, query, values...)
	return err
}

// Telemetry log methods

func (s *Store) AppendLog(ctx context.Context, macAddress string, timestamp time.Time, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO device_logs (mac_address, timestamp, data)
		VALUES (?, ?, ?)
	`, macAddress, timestamp, string(data))
	return err
}

func (s *Store) ListLogs(ctx context.Context, macAddress string) ([]*storage.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mac_address, timestamp, data FROM device_logs
		WHERE mac_address = ? ORDER BY timestamp ASC
	`, macAddress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*storage.LogEntry
	for rows.Next() {
		var entry storage.LogEntry
		var data string
		if err := rows.Scan(&entry.ID, &entry.MacAddress, &entry.Timestamp, &data); err != nil {
			return nil, err
		}
		entry.Data = []byte(data)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// Screen methods

func (s *Store) SaveScreen(ctx context.Context, screen *storage.Screen) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO screens (filename, device_id, content_type, created_at, file_path)
		VALUES (?, ?, ?, ?, ?)
	`, screen.Filename, screen.DeviceID, screen.ContentType, screen.CreatedAt, screen.FilePath)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		screen.ID = id
	}
	return nil
}

func (s *Store) ListScreens(ctx context.Context, limit int) ([]*storage.Screen, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, device_id, content_type, created_at, file_path FROM screens
		ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var screens []*storage.Screen
	for rows.Next() {
		var screen storage.Screen
		if err := rows.Scan(&screen.ID, &screen.Filename, &screen.DeviceID, &screen.ContentType,
			&screen.CreatedAt, &screen.FilePath); err != nil {
			return nil, err
		}
		screens = append(screens, &screen)
	}
	return screens, rows.Err()
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
