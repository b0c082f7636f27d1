package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for generation progress
	MessageTypeNormal MessageType = iota
	// MessageTypeAlert is for restarts and failed transitions
	MessageTypeAlert
	// MessageTypeSystem is for host actions such as regenerate
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255}
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}
