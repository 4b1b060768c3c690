// Package history keeps per-user conversation history in process memory.
// Entries are append-only for the lifetime of the process; durability
// across restarts is deliberately not provided — the prompt log table is
// the durable record.
package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// titleLimit caps the conversation title derived from the first prompt.
const titleLimit = 60

// Entry is one prompt → visualization exchange. HTML is empty when the
// generation failed or was superseded.
type Entry struct {
	Prompt    string    `json:"prompt"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation groups a user's exchanges under a title derived from the
// first prompt.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Store holds conversations per user. Thread-safe.
type Store struct {
	conversations map[string][]*Conversation // user → conversations, oldest first
	mu            sync.RWMutex
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{conversations: make(map[string][]*Conversation)}
}

// StartConversation opens a new conversation for the user, titled from the
// prompt, and returns its id.
func (s *Store) StartConversation(userID, prompt string) string {
	conv := &Conversation{
		ID:        uuid.New().String(),
		Title:     deriveTitle(prompt),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.conversations[userID] = append(s.conversations[userID], conv)
	s.mu.Unlock()

	return conv.ID
}

// Append records one exchange on an existing conversation.
func (s *Store) Append(userID, conversationID string, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, conv := range s.conversations[userID] {
		if conv.ID == conversationID {
			conv.Entries = append(conv.Entries, entry)
			return nil
		}
	}
	return fmt.Errorf("conversation not found: %s", conversationID)
}

// List returns copies of the user's conversations, most recent first.
func (s *Store) List(userID string) []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	convs := s.conversations[userID]
	out := make([]Conversation, 0, len(convs))
	for i := len(convs) - 1; i >= 0; i-- {
		out = append(out, *snapshot(convs[i]))
	}
	return out
}

// Get returns a copy of one conversation.
func (s *Store) Get(userID, conversationID string) (*Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conv := range s.conversations[userID] {
		if conv.ID == conversationID {
			return snapshot(conv), true
		}
	}
	return nil, false
}

func snapshot(conv *Conversation) *Conversation {
	out := *conv
	out.Entries = make([]Entry, len(conv.Entries))
	copy(out.Entries, conv.Entries)
	return &out
}

func deriveTitle(prompt string) string {
	title := strings.Join(strings.Fields(prompt), " ")
	if runes := []rune(title); len(runes) > titleLimit {
		// Truncate on a rune boundary so multi-byte text stays valid UTF-8.
		title = strings.TrimSpace(string(runes[:titleLimit])) + "…"
	}
	if title == "" {
		title = "Untitled visualization"
	}
	return title
}
