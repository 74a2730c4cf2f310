// Package conversation keeps per-user chat history for the command
// interpreter. History backs the free-text fallback: the model sees the tail
// of the exchange, not the whole transcript.
package conversation

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Message roles follow the chat-completions convention. Name is only
// meaningful for function-role entries and stays empty otherwise.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleFunction  = "function"
)

// Message is one entry in a user's conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

const (
	// DefaultCapacity bounds how many users keep history in memory at once.
	// The least recently active user is evicted when the bound is hit.
	DefaultCapacity = 1024

	// RecentMessageLimit is how many trailing messages are forwarded to a
	// model call. History beyond this stays stored but never leaves the store.
	RecentMessageLimit = 8
)

// systemPreamble opens every user's history. It frames the assistant for the
// chat fallback; structured intents never reach the model.
const systemPreamble = "You are a helpful assistant for a delivery order service. " +
	"Users can create orders, track them by their ORD- identifier, list recent orders, " +
	"schedule pickups, and update or cancel existing orders. Keep replies short and conversational."

type history struct {
	messages []Message
}

// Store holds conversation history per user id, bounded by an LRU over users.
// A user's full history is kept until the user is evicted; eviction of one
// user never truncates another's history. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	users *lru.Cache[string, *history]
}

// NewStore creates a conversation store bounded to capacity users.
// Capacity values below 1 fall back to DefaultCapacity.
func NewStore(capacity int) (*Store, error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	users, err := lru.New[string, *history](capacity)
	if err != nil {
		return nil, err
	}

	return &Store{users: users}, nil
}

// Append records messages at the end of the user's history. A user seen for
// the first time (or re-seen after eviction) gets the system preamble before
// anything else.
func (s *Store) Append(userID string, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.touch(userID)
	h.messages = append(h.messages, messages...)
}

// Recent returns the trailing RecentMessageLimit messages of the user's
// history, preamble included when it still fits the window. A user without
// history gets just the preamble, so a chat fallback on first contact is
// still framed.
func (s *Store) Recent(userID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.touch(userID)

	start := 0
	if len(h.messages) > RecentMessageLimit {
		start = len(h.messages) - RecentMessageLimit
	}

	recent := make([]Message, len(h.messages)-start)
	copy(recent, h.messages[start:])
	return recent
}

// History returns a copy of the user's full stored history.
func (s *Store) History(userID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.touch(userID)

	all := make([]Message, len(h.messages))
	copy(all, h.messages)
	return all
}

// Len reports how many users currently hold history.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users.Len()
}

// touch fetches the user's history, creating it with the preamble on first
// contact. Fetching marks the user as recently used. Callers hold s.mu.
func (s *Store) touch(userID string) *history {
	if h, ok := s.users.Get(userID); ok {
		return h
	}

	h := &history{messages: []Message{{Role: RoleSystem, Content: systemPreamble}}}
	s.users.Add(userID, h)
	return h
}
