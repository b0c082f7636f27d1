package systems

import (
	"sync"

	"crypthack/config"
)

// MessageLog keeps the most recent log lines. It is safe for concurrent use.
type MessageLog struct {
	mu          sync.Mutex
	messages    []ColoredMessage
	maxMessages int
}

var (
	globalMessageLog *MessageLog
	messageLogOnce   sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	messageLogOnce.Do(func() {
		globalMessageLog = NewMessageLog(config.MessageLogSize)
	})
	return globalMessageLog
}

// NewMessageLog creates a log holding at most max messages
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{maxMessages: max}
}

// Add adds a normal message. Its signature fits the generator log hook.
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(message string, t MessageType) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.messages = append(ml.messages, ColoredMessage{Text: message, Type: t})
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.messages) {
		n = len(ml.messages)
	}
	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}
	return result
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	ml.messages = nil
	ml.mu.Unlock()
}
