package usecase

import (
	"context"
	"sync/atomic"

	"portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/domain"
	"portfolio-builder/pkg/ai"
)

// mockCompleter records calls and delegates to fn.
type mockCompleter struct {
	fn    func(ctx context.Context, req ai.Request) (string, error)
	calls atomic.Int32
}

func (m *mockCompleter) Complete(ctx context.Context, req ai.Request) (string, error) {
	m.calls.Add(1)
	return m.fn(ctx, req)
}

// mockStore is an in-memory Store keyed by email.
type mockStore struct {
	docs    map[string]domain.PortfolioDocument
	saveErr error
}

func newMockStore() *mockStore {
	return &mockStore{docs: map[string]domain.PortfolioDocument{}}
}

func (m *mockStore) Save(ctx context.Context, doc domain.PortfolioDocument) (domain.PortfolioDocument, error) {
	if m.saveErr != nil {
		return domain.PortfolioDocument{}, m.saveErr
	}
	m.docs[doc.Email] = doc
	return doc, nil
}

func (m *mockStore) Fetch(ctx context.Context, email string) (domain.PortfolioDocument, error) {
	doc, ok := m.docs[email]
	if !ok {
		return domain.PortfolioDocument{}, repository.ErrNotFound
	}
	return doc, nil
}
