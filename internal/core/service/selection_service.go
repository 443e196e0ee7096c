package service

import (
	"sync"

	"github.com/controlhs/datacore/internal/core/domain"
)

// SelectionService owns the in-progress purchase-request drafts, one
// per user. Drafts live in memory only and are discarded on Clear.
type SelectionService struct {
	mu     sync.Mutex
	drafts map[string]*domain.SelectionList
}

func NewSelectionService() *SelectionService {
	return &SelectionService{
		drafts: make(map[string]*domain.SelectionList),
	}
}

func (s *SelectionService) SetQuantity(userID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		draft = domain.NewSelectionList()
		s.drafts[userID] = draft
	}
	draft.SetQuantity(productID, quantity)
}

// Entries returns the user's draft in insertion order. A user without a
// draft gets an empty snapshot.
func (s *SelectionService) Entries(userID string) []domain.SelectionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[userID]
	if !ok {
		return []domain.SelectionEntry{}
	}
	return draft.Entries()
}

// Clear discards the user's draft entirely.
func (s *SelectionService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
