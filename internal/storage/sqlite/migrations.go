package sqlite

// schema contains the database schema DDL.
const schema = `
-- Devices
CREATE TABLE IF NOT EXISTS devices (
    mac_address TEXT PRIMARY KEY,
    api_key TEXT UNIQUE NOT NULL,
    friendly_id TEXT UNIQUE NOT NULL,
    created_at DATETIME NOT NULL,
    last_seen DATETIME,
    firmware_version TEXT,
    battery_voltage REAL
);

-- Telemetry logs
CREATE TABLE IF NOT EXISTS device_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mac_address TEXT NOT NULL,
    timestamp DATETIME NOT NULL,
    data TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_device_logs_mac ON device_logs(mac_address, timestamp);

-- Generated screens
CREATE TABLE IF NOT EXISTS screens (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    device_id TEXT,
    content_type TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    file_path TEXT NOT NULL
);
`
