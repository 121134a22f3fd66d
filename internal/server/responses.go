package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusResponse is returned by the root and status endpoints.
type StatusResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// DisplayResponse is the device polling payload.
type DisplayResponse struct {
	Status          int     `json:"status"`
	ImageURL        string  `json:"image_url"`
	Filename        string  `json:"filename"`
	RefreshRate     int     `json:"refresh_rate"`
	UpdateFirmware  bool    `json:"update_firmware"`
	FirmwareURL     *string `json:"firmware_url"`
	ResetFirmware   bool    `json:"reset_firmware"`
	SpecialFunction string  `json:"special_function"`
	ImageURLTimeout int     `json:"image_url_timeout"`
}

// SetupResponse carries device credentials after provisioning.
type SetupResponse struct {
	Status     int    `json:"status"`
	APIKey     string `json:"api_key"`
	FriendlyID string `json:"friendly_id"`
	ImageURL   string `json:"image_url"`
	Message    string `json:"message"`
}

// ScreenResponse acknowledges a content push.
type ScreenResponse struct {
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

// ErrorResponse is the envelope for unhandled failures.
type ErrorResponse struct {
	Status     int    `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// ScreenRequest is the content push body.
type ScreenRequest struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	Filename    string `json:"filename,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	DeviceID    string `json:"device_id,omitempty"`
}

// TelemetryLog is the device log body. All fields are optional.
type TelemetryLog struct {
	BatteryVoltage    *float64 `json:"battery_voltage,omitempty"`
	HeapFree          *int64   `json:"heap_free,omitempty"`
	RSSI              *int     `json:"rssi,omitempty"`
	WakeReason        *string  `json:"wake_reason,omitempty"`
	SleepDuration     *int     `json:"sleep_duration,omitempty"`
	FirmwareVersion   *string  `json:"firmware_version,omitempty"`
	Uptime            *int64   `json:"uptime,omitempty"`
	WifiConnectTime   *int     `json:"wifi_connect_time,omitempty"`
	ImageDownloadTime *int     `json:"image_download_time,omitempty"`
	DisplayRenderTime *int     `json:"display_render_time,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeInternalError(w http.ResponseWriter, cause any) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Status:     2,
		Error:      "Internal Server Error",
		Message:    fmt.Sprint(cause),
		RetryAfter: 300,
	})
}
