package repository

import (
	"context"
	"sync"

	"frontdesk/pkg/model"
)

// InMemoryConversationRepository is the test double for conversation storage.
type InMemoryConversationRepository struct {
	mu            sync.RWMutex
	conversations []model.Conversation

	// FailCreate makes Create return this error, for exercising the
	// log-and-continue path.
	FailCreate error
}

func NewInMemoryConversationRepository() *InMemoryConversationRepository {
	return &InMemoryConversationRepository{}
}

func (r *InMemoryConversationRepository) Create(_ context.Context, conversation *model.Conversation) error {
	if r.FailCreate != nil {
		return r.FailCreate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations = append(r.conversations, *conversation)
	return nil
}

func (r *InMemoryConversationRepository) FindBySender(_ context.Context, sender string, limit int64) ([]model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Conversation
	for i := len(r.conversations) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		if r.conversations[i].Sender == sender {
			result = append(result, r.conversations[i])
		}
	}
	return result, nil
}

// All returns every stored conversation in insertion order.
func (r *InMemoryConversationRepository) All() []model.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Conversation, len(r.conversations))
	copy(out, r.conversations)
	return out
}
