package memory

import "sync"

// DefaultCapacity keeps the last five user/bot exchanges per owner.
const DefaultCapacity = 10

const (
	SpeakerUser = "Human"
	SpeakerBot  = "AI"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Speaker string
	Text    string
}

// Window holds a bounded conversation history per owner. Oldest turns are
// dropped first once an owner reaches capacity. Nothing is persisted; history
// is gone on restart.
type Window struct {
	mu       sync.Mutex
	capacity int
	turns    map[string][]Turn
}

func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Window{
		capacity: capacity,
		turns:    make(map[string][]Turn),
	}
}

func (w *Window) Append(ownerID, speaker, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	turns := append(w.turns[ownerID], Turn{Speaker: speaker, Text: text})
	if len(turns) > w.capacity {
		turns = turns[len(turns)-w.capacity:]
	}
	w.turns[ownerID] = turns
}

// Recent returns the owner's turns oldest first. The slice is a copy; callers
// may not mutate the window through it.
func (w *Window) Recent(ownerID string) []Turn {
	w.mu.Lock()
	defer w.mu.Unlock()

	turns := w.turns[ownerID]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
