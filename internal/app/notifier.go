package app

import (
	"fmt"
	"log"
	"sync"
)

// Notification titles
const (
	TitleSuccess    = "Success"
	TitleError      = "Error"
	TitleTranscript = "Transcript"
	TitleCancelled  = "Cancelled"
)

// Notifier receives user-facing messages for one request.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

// Info implements Notifier.
func (LogNotifier) Info(title, message string) {
	log.Printf("[%s] %s", title, message)
}

// Error implements Notifier.
func (LogNotifier) Error(title, message string) {
	log.Printf("[%s] %s", title, message)
}

// Message is one recorded notification.
type Message struct {
	Error bool
	Title string
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("%s: %s", m.Title, m.Text)
}

// RecordingNotifier keeps every notification in order.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []Message
}

// Info implements Notifier.
func (r *RecordingNotifier) Info(title, message string) {
	r.add(Message{Title: title, Text: message})
}

// Error implements Notifier.
func (r *RecordingNotifier) Error(title, message string) {
	r.add(Message{Error: true, Title: title, Text: message})
}

func (r *RecordingNotifier) add(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

// Messages returns a copy of the recorded notifications.
func (r *RecordingNotifier) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Errors returns only the error notifications.
func (r *RecordingNotifier) Errors() []Message {
	var out []Message
	for _, m := range r.Messages() {
		if m.Error {
			out = append(out, m)
		}
	}
	return out
}
