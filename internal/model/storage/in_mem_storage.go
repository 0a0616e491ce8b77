package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/category"
	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/entity/user"
	"max.ks1230/fintrack/internal/model/customerr"
)

// InMemStorage mirrors PostgresStorage semantics, including the cascade from
// category deletion and budget uniqueness. It backs the tests.
type InMemStorage struct {
	mu sync.Mutex

	nextUserID   int64
	users        map[int64]user.Record
	categories   map[string]category.Record
	transactions map[string]transaction.Record
	budgets      map[string]budget.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		users:        make(map[int64]user.Record),
		categories:   make(map[string]category.Record),
		transactions: make(map[string]transaction.Record),
		budgets:      make(map[string]budget.Record),
	}
}

func (s *InMemStorage) CreateUser(_ context.Context) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	rec := user.Record{
		ID:        s.nextUserID,
		APIToken:  uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.users[rec.ID] = rec
	return rec, nil
}

func (s *InMemStorage) GetUserByToken(_ context.Context, token string) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.APIToken == token {
			return u, nil
		}
	}
	return user.Record{}, &customerr.NotFoundError{Entity: "user"}
}

func (s *InMemStorage) GetUserByID(_ context.Context, id int64) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.Record{}, &customerr.NotFoundError{Entity: "user"}
	}
	return u, nil
}

func (s *InMemStorage) SetTelegramChat(_ context.Context, userID, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return &customerr.NotFoundError{Entity: "user"}
	}
	u.TelegramChatID = chatID
	s.users[userID] = u
	return nil
}

func (s *InMemStorage) SaveCategory(_ context.Context, rec category.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[rec.ID] = rec
	return nil
}

func (s *InMemStorage) UserCategories(_ context.Context, userID int64) ([]category.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := make([]category.Record, 0)
	for _, c := range s.categories {
		if c.UserID == userID {
			cats = append(cats, c)
		}
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].Name < cats[j].Name
	})
	return cats, nil
}

func (s *InMemStorage) GetCategory(_ context.Context, userID int64, id string) (category.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok || c.UserID != userID {
		return category.Record{}, &customerr.NotFoundError{Entity: "category"}
	}
	return c, nil
}

func (s *InMemStorage) DeleteCategory(_ context.Context, userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok || c.UserID != userID {
		return &customerr.NotFoundError{Entity: "category"}
	}
	delete(s.categories, id)
	for txID, tx := range s.transactions {
		if tx.CategoryID == id {
			delete(s.transactions, txID)
		}
	}
	for bID, b := range s.budgets {
		if b.CategoryID == id {
			delete(s.budgets, bID)
		}
	}
	return nil
}

func (s *InMemStorage) SaveTransaction(_ context.Context, rec transaction.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[rec.CategoryID]
	if !ok || c.UserID != rec.UserID {
		return &customerr.NotFoundError{Entity: "category"}
	}
	s.transactions[rec.ID] = rec
	return nil
}

func (s *InMemStorage) UserTransactions(_ context.Context, userID int64, f transaction.Filter) ([]transaction.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := make([]transaction.Record, 0)
	for _, t := range s.transactions {
		if t.UserID != userID {
			continue
		}
		if f.From != nil && t.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && t.Date.After(*f.To) {
			continue
		}
		txs = append(txs, t)
	}
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	if f.Limit > 0 && uint64(len(txs)) > f.Limit {
		txs = txs[:f.Limit]
	}
	return txs, nil
}

func (s *InMemStorage) DeleteTransaction(_ context.Context, userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok || t.UserID != userID {
		return &customerr.NotFoundError{Entity: "transaction"}
	}
	delete(s.transactions, id)
	return nil
}

func (s *InMemStorage) SaveBudget(_ context.Context, rec budget.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[rec.CategoryID]
	if !ok || c.UserID != rec.UserID {
		return &customerr.NotFoundError{Entity: "category"}
	}
	for _, b := range s.budgets {
		if b.UserID == rec.UserID && b.CategoryID == rec.CategoryID && b.Month.Equal(rec.Month) {
			return &customerr.DuplicateError{Err: "budget for this category and month already exists"}
		}
	}
	s.budgets[rec.ID] = rec
	return nil
}

func (s *InMemStorage) UserBudgets(_ context.Context, userID int64) ([]budget.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buds := make([]budget.Record, 0)
	for _, b := range s.budgets {
		if b.UserID == userID {
			buds = append(buds, b)
		}
	}
	sort.Slice(buds, func(i, j int) bool {
		if !buds[i].Month.Equal(buds[j].Month) {
			return buds[i].Month.After(buds[j].Month)
		}
		return buds[i].CreatedAt.After(buds[j].CreatedAt)
	})
	return buds, nil
}

func (s *InMemStorage) DeleteBudget(_ context.Context, userID int64, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.budgets[id]
	if !ok || b.UserID != userID {
		return &customerr.NotFoundError{Entity: "budget"}
	}
	delete(s.budgets, id)
	return nil
}
