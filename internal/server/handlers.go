package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/byos/trmnl-go/internal/domain"
	"github.com/byos/trmnl-go/internal/identity"
	"github.com/byos/trmnl-go/internal/imaging"
	"github.com/byos/trmnl-go/internal/render"
	"github.com/byos/trmnl-go/internal/storage"
)

// Refresh rate bounds accepted by the refresh_rate endpoint, in seconds.
const (
	MinRefreshRate = 60
	MaxRefreshRate = 3600
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Message:   "TRMNL Custom Server",
		Status:    "running",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleDisplay serves the polling endpoint: refreshes the device's check-in
// fields, then returns the registered image or a freshly synthesized default
// if nothing has been pushed yet.
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	mac := r.Header.Get("ID")
	if mac == "" {
		writeError(w, http.StatusBadRequest, "missing ID header")
		return
	}
	width := headerInt(r, "Width", s.cfg.Display.Width)
	height := headerInt(r, "Height", s.cfg.Display.Height)

	now := time.Now().UTC()
	update := storage.StatusUpdate{LastSeen: &now}
	if fw := r.Header.Get("FW-Version"); fw != "" {
		update.FirmwareVersion = &fw
	}
	if battery, ok := headerFloat(r, "Battery-Voltage"); ok {
		update.BatteryVoltage = &battery
	}
	if err := s.store.UpdateDeviceStatus(r.Context(), mac, update); err != nil {
		s.internalError(w, err)
		return
	}

	filename, ok := s.latest.Get()
	if !ok {
		// Nothing pushed yet: synthesize the default screen on demand. It is
		// deliberately not written to the register.
		canvas := render.RenderHelloWorld(now, width, height)
		render.Watermark(canvas, s.cfg.ServerURL)
		artifact, err := s.images.Save(canvas, "hello-world-"+now.Format("20060102-150405"))
		if err != nil {
			s.internalError(w, err)
			return
		}
		filename = artifact.Filename
	}

	writeJSON(w, http.StatusOK, s.displayResponse(r, filename))
}

// handleSetup provisions a device on first boot. Repeat calls return the
// existing credentials; the welcome image is regenerated every time.
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	mac := r.Header.Get("ID")
	if mac == "" {
		writeError(w, http.StatusBadRequest, "missing ID header")
		return
	}

	created := false
	device, err := s.store.GetDevice(r.Context(), mac)
	switch {
	case err == nil:
		// Known device: idempotent response with its existing credentials.
	case storage.IsNotFound(err):
		created = true
		device = storage.NewDevice(mac, identity.NewAPIKey(), identity.NewFriendlyID())
		if fw := r.Header.Get("FW-Version"); fw != "" {
			device.FirmwareVersion = &fw
		}
		if err := s.store.CreateDevice(r.Context(), device); err != nil {
			s.internalError(w, err)
			return
		}
		s.log.Info("provisioned device",
			zap.String("mac", mac),
			zap.String("friendly_id", device.FriendlyID))
	default:
		s.internalError(w, err)
		return
	}

	now := time.Now().UTC()
	canvas := render.RenderWelcome(device.FriendlyID, now, s.cfg.Display.Width, s.cfg.Display.Height)
	render.Watermark(canvas, s.cfg.ServerURL)
	artifact, err := s.images.Save(canvas, fmt.Sprintf("welcome-%s-%s", device.FriendlyID, now.Format("20060102-150405")))
	if err != nil {
		s.internalError(w, err)
		return
	}

	message := "Welcome to your custom TRMNL server"
	if !created {
		message = "Welcome back to your TRMNL server"
	}
	writeJSON(w, http.StatusOK, SetupResponse{
		Status:     200,
		APIKey:     device.APIKey,
		FriendlyID: device.FriendlyID,
		ImageURL:   s.imageURL(r, artifact.Filename),
		Message:    message,
	})
}

// handleLog accepts telemetry unconditionally; unknown devices are not an
// error and no device record is created for them.
func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	mac := r.Header.Get("ID")
	if mac == "" {
		writeError(w, http.StatusBadRequest, "missing ID header")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	var entry TelemetryLog
	if err := json.Unmarshal(body, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid log payload")
		return
	}

	now := time.Now().UTC()
	if err := s.store.AppendLog(r.Context(), mac, now, body); err != nil {
		s.internalError(w, err)
		return
	}

	// Refresh status fields only for registered devices.
	if _, err := s.store.GetDevice(r.Context(), mac); err == nil {
		update := storage.StatusUpdate{
			LastSeen:        &now,
			FirmwareVersion: entry.FirmwareVersion,
			BatteryVoltage:  entry.BatteryVoltage,
		}
		if err := s.store.UpdateDeviceStatus(r.Context(), mac, update); err != nil {
			s.internalError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Log data received",
	})
}

// handleScreens rasterizes pushed content and publishes it as the latest
// image served to polling devices.
func (s *Server) handleScreens(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	width := req.Width
	if width <= 0 {
		width = s.cfg.Display.Width
	}
	height := req.Height
	if height <= 0 {
		height = s.cfg.Display.Height
	}

	payload, err := screenPayload(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	canvas, err := render.Rasterize(payload, width, height)
	if err != nil {
		// Only the data URI path can fail, and that is a validation error.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	render.Watermark(canvas, s.cfg.ServerURL)

	now := time.Now().UTC()
	filename := req.Filename
	if filename == "" {
		filename = imaging.DeriveFilename(req.Content, now)
	}
	artifact, err := s.images.Save(canvas, filename)
	if err != nil {
		s.internalError(w, err)
		return
	}

	screen := &storage.Screen{
		Filename:    artifact.Filename,
		ContentType: req.ContentType,
		CreatedAt:   now,
		FilePath:    artifact.Path,
	}
	if req.DeviceID != "" {
		screen.DeviceID = &req.DeviceID
	}
	if err := s.store.SaveScreen(r.Context(), screen); err != nil {
		s.log.Warn("failed to record screen", zap.String("filename", artifact.Filename), zap.Error(err))
	}

	s.latest.Set(artifact.Filename)
	s.log.Info("screen pushed",
		zap.String("filename", artifact.Filename),
		zap.String("content_type", req.ContentType))

	writeJSON(w, http.StatusOK, ScreenResponse{
		Status:   "success",
		ImageURL: s.imageURL(r, artifact.Filename),
		Filename: artifact.Filename,
	})
}

// screenPayload maps the wire content_type onto a rasterizer payload.
func screenPayload(req ScreenRequest) (domain.ContentPayload, error) {
	switch req.ContentType {
	case "html":
		return domain.HTMLPayload(req.Content), nil
	case "uri", "data":
		return domain.DataURIPayload(req.Content), nil
	case "big_text":
		return domain.BigTextPayload(req.Content, ""), nil
	default:
		return domain.ContentPayload{}, fmt.Errorf("unsupported content_type %q", req.ContentType)
	}
}

// handleRefreshRate updates the process-wide default refresh rate.
func (s *Server) handleRefreshRate(w http.ResponseWriter, r *http.Request) {
	raw := r.Header.Get("Refresh-Rate")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing Refresh-Rate header")
		return
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Refresh-Rate must be an integer")
		return
	}
	if seconds < MinRefreshRate || seconds > MaxRefreshRate {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Refresh-Rate must be between %d and %d seconds", MinRefreshRate, MaxRefreshRate))
		return
	}
	s.refresh.Set(seconds)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"refresh_rate": seconds,
	})
}

// handleCurrentScreen synthesizes a fresh status snapshot for the device on
// every call. It does not touch last_seen and is never cached.
func (s *Server) handleCurrentScreen(w http.ResponseWriter, r *http.Request) {
	mac := r.Header.Get("ID")
	if mac == "" {
		writeError(w, http.StatusBadRequest, "missing ID header")
		return
	}

	name := mac
	lastSeen := "Never"
	battery := "Unknown"
	firmware := "Unknown"
	if device, err := s.store.GetDevice(r.Context(), mac); err == nil {
		name = device.FriendlyID
		if device.LastSeen != nil {
			lastSeen = device.LastSeen.UTC().Format("2006-01-02 15:04:05 UTC")
		}
		if device.BatteryVoltage != nil {
			battery = strconv.FormatFloat(*device.BatteryVoltage, 'f', -1, 64)
		}
		if device.FirmwareVersion != nil {
			firmware = *device.FirmwareVersion
		}
	}

	now := time.Now().UTC()
	content := fmt.Sprintf(`Current Screen

Device: %s
MAC: %s
Last Seen: %s
Battery: %sV
Firmware: %s

Server Status: Running
Time: %s`, name, mac, lastSeen, battery, firmware, now.Format("2006-01-02 15:04:05 UTC"))

	canvas := render.RenderText(content, s.cfg.Display.Width, s.cfg.Display.Height)
	render.Watermark(canvas, s.cfg.ServerURL)
	artifact, err := s.images.Save(canvas, imaging.DeriveFilename(content, now))
	if err != nil {
		s.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.displayResponse(r, artifact.Filename))
}

func (s *Server) displayResponse(r *http.Request, filename string) DisplayResponse {
	return DisplayResponse{
		Status:          0,
		ImageURL:        s.imageURL(r, filename),
		Filename:        filename,
		RefreshRate:     s.refresh.Get(),
		UpdateFirmware:  false,
		FirmwareURL:     nil,
		ResetFirmware:   false,
		SpecialFunction: "sleep",
		ImageURLTimeout: 30,
	}
}

func (s *Server) imageURL(r *http.Request, filename string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/static/images/%s.png", scheme, r.Host, filename)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.log.Error("request failed", zap.Error(err))
	writeInternalError(w, err)
}

func headerInt(r *http.Request, key string, def int) int {
	if raw := r.Header.Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func headerFloat(r *http.Request, key string) (float64, bool) {
	if raw := r.Header.Get(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
