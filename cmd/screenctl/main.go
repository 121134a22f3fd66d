// Package main is a small client for pushing screen content to a running
// TRMNL server, once or on a fixed interval.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type screenRequest struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	Filename    string `json:"filename,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	DeviceID    string `json:"device_id,omitempty"`
}

func main() {
	serverURL := flag.String("server", "http://localhost:8000", "base URL of the TRMNL server")
	contentType := flag.String("type", "html", "content type: html, uri, data or big_text")
	content := flag.String("content", "", "content to push (required)")
	filename := flag.String("filename", "", "artifact filename (optional, derived when empty)")
	width := flag.Int("width", 0, "canvas width (optional)")
	height := flag.Int("height", 0, "canvas height (optional)")
	deviceID := flag.String("device", "", "device MAC to tag the screen with (optional)")
	every := flag.Duration("every", 0, "repush interval; 0 pushes once and exits")
	flag.Parse()

	if *content == "" {
		fmt.Fprintln(os.Stderr, "Error: -content is required")
		flag.Usage()
		os.Exit(1)
	}

	req := screenRequest{
		ContentType: *contentType,
		Content:     *content,
		Filename:    *filename,
		Width:       *width,
		Height:      *height,
		DeviceID:    *deviceID,
	}

	if err := push(*serverURL, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *every <= 0 {
		return
	}

	fmt.Printf("Pushing every %s. Press Ctrl+C to stop.\n", *every)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := push(*serverURL, req); err != nil {
				fmt.Printf("[%s] Error: %v\n", time.Now().Format("15:04:05"), err)
			}
		case <-sigChan:
			fmt.Println("\nStopping...")
			return
		}
	}
}

func push(serverURL string, req screenRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := http.Post(serverURL+"/api/screens", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}

	var ack struct {
		Filename string `json:"filename"`
		ImageURL string `json:"image_url"`
	}
	if err := json.Unmarshal(payload, &ack); err != nil {
		return fmt.Errorf("unexpected response: %s", payload)
	}
	fmt.Printf("[%s] Pushed %s -> %s\n", time.Now().Format("15:04:05"), ack.Filename, ack.ImageURL)
	return nil
}
