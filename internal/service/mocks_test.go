package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest/wellness-checkin/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockCheckInStateRepository is an in-memory CheckInStateRepository
type MockCheckInStateRepository struct {
	state map[uuid.UUID]*domain.DailyCheckIn
	err   error
}

func NewMockCheckInStateRepository() *MockCheckInStateRepository {
	return &MockCheckInStateRepository{state: make(map[uuid.UUID]*domain.DailyCheckIn)}
}

func (m *MockCheckInStateRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.DailyCheckIn, error) {
	if m.err != nil {
		return nil, m.err
	}
	day, ok := m.state[userID]
	if !ok {
		return nil, nil
	}
	copied := *day
	return &copied, nil
}

func (m *MockCheckInStateRepository) Put(ctx context.Context, userID uuid.UUID, day *domain.DailyCheckIn) error {
	if m.err != nil {
		return m.err
	}
	copied := *day
	m.state[userID] = &copied
	return nil
}

// MockHistoryRepository is an in-memory HistoryRepository
type MockHistoryRepository struct {
	entries []domain.HistoryEntry
	err     error
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockHistoryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HistoryEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if filter.FromDate != "" && e.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && e.Date > filter.ToDate {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})
	return result, nil
}

func (m *MockHistoryRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HistoryEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}
