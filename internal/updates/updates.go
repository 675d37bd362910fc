// Package updates provides the thread-safe queue that carries status and
// transcription updates from background goroutines to the UI poller.
//
// Any goroutine may enqueue; exactly one consumer drains the queue on a
// fixed interval and applies the entries in enqueue order. This queue is
// the only synchronization point between the workers and the UI.
package updates

import "sync"

// State is the process-wide dictation status.
type State int

const (
	StateReady State = iota
	StateRecording
	StateTranscribing
	StateError
)

// String returns the status label shown in the UI.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRecording:
		return "Listening..."
	case StateTranscribing:
		return "Thinking..."
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Kind tags a queue entry.
type Kind int

const (
	// KindStatus carries a state change with an optional message.
	KindStatus Kind = iota
	// KindTranscription carries the latest recognized text.
	KindTranscription
)

// Update is a single queue entry.
type Update struct {
	Kind    Kind
	State   State  // KindStatus only
	Message string // KindStatus only
	Text    string // KindTranscription only
}

// Queue is an unbounded FIFO of updates. The zero value is ready to use.
type Queue struct {
	mu      sync.Mutex
	entries []Update
}

// PushStatus enqueues a status change.
func (q *Queue) PushStatus(state State, message string) {
	q.push(Update{Kind: KindStatus, State: state, Message: message})
}

// PushTranscription enqueues a transcription-text update.
func (q *Queue) PushTranscription(text string) {
	q.push(Update{Kind: KindTranscription, Text: text})
}

func (q *Queue) push(u Update) {
	q.mu.Lock()
	q.entries = append(q.entries, u)
	q.mu.Unlock()
}

// Drain removes and returns all queued updates in enqueue order.
// Returns nil when the queue is empty.
func (q *Queue) Drain() []Update {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) == 0 {
		return nil
	}
	entries := q.entries
	q.entries = nil
	return entries
}

// Len returns the number of pending updates.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
