package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/fintrack/internal/entity/budget"
	"max.ks1230/fintrack/internal/entity/user"
	"max.ks1230/fintrack/internal/model/customerr"
	"max.ks1230/fintrack/internal/model/stats"
)

type fakeCache struct {
	entries map[int64][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64][]byte)}
}

func (c *fakeCache) CacheDashboard(userID int64, payload []byte) error {
	c.entries[userID] = payload
	return nil
}

func (c *fakeCache) GetDashboard(userID int64) ([]byte, error) {
	raw, ok := c.entries[userID]
	if !ok {
		return nil, &customerr.NotFoundError{Entity: "dashboard"}
	}
	return raw, nil
}

func (c *fakeCache) InvalidateDashboard(userID int64) error {
	delete(c.entries, userID)
	return nil
}

func Test_OnCacheMiss_ShouldGenerateAndWarmCache(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(NewGenerator(fakeConfig{}, &fakeStorage{}), cache)

	d, err := svc.Dashboard(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, int64(123), d.UserID)
	assert.Contains(t, cache.entries, int64(123))
}

func Test_OnCacheHit_ShouldSkipGeneration(t *testing.T) {
	cache := newFakeCache()
	cached := Dashboard{UserID: 123, Balance: 42}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, cache.CacheDashboard(123, raw))

	// A storage that fails loudly proves the generator was never consulted.
	failing := &fakeStorage{err: assert.AnError}
	svc := NewService(NewGenerator(fakeConfig{}, failing), cache)

	d, err := svc.Dashboard(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, 42.0, d.Balance)
}

func Test_OnInvalidate_ShouldDropCachedEntry(t *testing.T) {
	cache := newFakeCache()
	require.NoError(t, cache.CacheDashboard(123, []byte("{}")))

	svc := NewService(NewGenerator(fakeConfig{}, &fakeStorage{}), cache)
	svc.Invalidate(123)

	assert.NotContains(t, cache.entries, int64(123))
}

type fakeUserStorage struct {
	rec user.Record
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, _ int64) (user.Record, error) {
	return f.rec, nil
}

type fakeSender struct {
	texts   []string
	chatIDs []int64
}

func (f *fakeSender) SendMessage(text string, chatID int64) error {
	f.texts = append(f.texts, text)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

func overBudgetDashboard() *Dashboard {
	return &Dashboard{
		UserID: 123,
		Budgets: []BudgetStatus{
			{
				Budget:       budget.Record{CategoryID: "cat-a", Amount: 50},
				CategoryName: "Groceries",
				Usage:        stats.BudgetUsage{Spent: 80, Over: true, Overage: 30},
			},
		},
	}
}

func Test_OnOverspend_ShouldAlertLinkedChat(t *testing.T) {
	sender := &fakeSender{}
	alerter := NewAlerter(&fakeUserStorage{rec: user.Record{ID: 123, TelegramChatID: 555}}, sender)

	err := alerter.NotifyOverspend(context.Background(), overBudgetDashboard())

	require.NoError(t, err)
	require.Len(t, sender.texts, 1)
	assert.Equal(t, int64(555), sender.chatIDs[0])
	assert.Contains(t, sender.texts[0], "Groceries")
	assert.Contains(t, sender.texts[0], "30.00 over")
}

func Test_OnOverspendWithoutLinkedChat_ShouldStaySilent(t *testing.T) {
	sender := &fakeSender{}
	alerter := NewAlerter(&fakeUserStorage{rec: user.Record{ID: 123}}, sender)

	err := alerter.NotifyOverspend(context.Background(), overBudgetDashboard())

	require.NoError(t, err)
	assert.Empty(t, sender.texts)
}

func Test_OnHealthyBudgets_ShouldNotAlert(t *testing.T) {
	sender := &fakeSender{}
	alerter := NewAlerter(&fakeUserStorage{rec: user.Record{ID: 123, TelegramChatID: 555}}, sender)

	d := &Dashboard{
		UserID:      123,
		GeneratedAt: time.Now(),
		Budgets: []BudgetStatus{
			{
				Budget:       budget.Record{CategoryID: "cat-a", Amount: 100},
				CategoryName: "Groceries",
				Usage:        stats.BudgetUsage{Spent: 80},
			},
		},
	}
	require.NoError(t, alerter.NotifyOverspend(context.Background(), d))
	assert.Empty(t, sender.texts)
}
