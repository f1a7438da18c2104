package badge

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Pages the firmware can store and show, one per hardware button.
var Pages = []string{"a", "b", "c", "up", "down"}

// Commands the firmware accepts over serial.
var Commands = []string{
	"reload", "exit",
	"blink", "terminal", "preview", "refresh",
	"store-a", "store-b", "store-c", "store-up", "store-down",
	"show-a", "show-b", "show-c", "show-up", "show-down",
}

// IsCommand reports whether name is a command the firmware knows.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}

// IsPage reports whether name is a storable badge page.
func IsPage(name string) bool {
	for _, p := range Pages {
		if p == name {
			return true
		}
	}
	return false
}

// A Command is one serial instruction for the badge. The firmware
// reads base64("name:metadata:payload") terminated by CRLF.
type Command struct {
	Name     string
	Metadata string
	Payload  string
}

// Preview builds the command that shows a buffer without storing it.
func Preview(payload string) Command {
	return Command{Name: "preview", Payload: payload}
}

// Store builds the command that persists a payload under a page slot.
func Store(page, metadata, payload string) Command {
	return Command{Name: "store-" + page, Metadata: metadata, Payload: payload}
}

// Show builds the command that displays a previously stored page.
func Show(page string) Command {
	return Command{Name: "show-" + page}
}

// Frame serializes the command the way the firmware's serial reader
// parses it.
func (c Command) Frame() string {
	plain := c.Name + ":" + c.Metadata + ":" + c.Payload
	return base64.StdEncoding.EncodeToString([]byte(plain)) + "\r\n"
}

// ParseFrame decodes a framed command string back into its parts.
func ParseFrame(frame string) (Command, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(frame))
	if err != nil {
		return Command{}, fmt.Errorf("badge: undecodable frame: %w", err)
	}
	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 {
		return Command{}, fmt.Errorf("badge: invalid command format: %q", string(raw))
	}
	return Command{
		Name:     strings.TrimSpace(parts[0]),
		Metadata: strings.TrimSpace(parts[1]),
		Payload:  strings.TrimSpace(parts[2]),
	}, nil
}
