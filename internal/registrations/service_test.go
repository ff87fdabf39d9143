package registrations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityday/registrations/internal/models"
)

// memStore records every Put; err, when set, is returned instead.
type memStore struct {
	mu   sync.Mutex
	puts []*models.Registration
	err  error
}

func (m *memStore) Put(_ context.Context, reg *models.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.puts = append(m.puts, reg)
	return nil
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 123456000, time.UTC)

func newTestService(store Store) *Service {
	svc := NewService(store, nil)
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc
}

func TestRegisterBuildsRecord(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com","name":"Ann","role":"organizer"}`))
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	assert.Same(t, reg, store.puts[0])
	assert.Equal(t, &models.Registration{
		ID:        "id-1",
		Email:     "a@b.com",
		Name:      "Ann",
		Role:      "organizer",
		Timestamp: "2026-03-14T09:30:00.123456",
		CreatedAt: "2026-03-14T09:30:00.123456",
	}, reg)
}

func TestRegisterKeepsCallerTimestamp(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com","timestamp":"2024-01-01T00:00:00","createdAt":"1999-01-01T00:00:00","id":"mine"}`))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01T00:00:00", reg.Timestamp)
	assert.Equal(t, "2026-03-14T09:30:00.123456", reg.CreatedAt)
	assert.Equal(t, "id-1", reg.ID)
}

func TestRegisterEmptyTimestampIsGenerated(t *testing.T) {
	svc := newTestService(&memStore{})

	reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com","timestamp":""}`))
	require.NoError(t, err)
	assert.Equal(t, reg.CreatedAt, reg.Timestamp)
}

func TestRegisterKeepsNameAndRoleAsGiven(t *testing.T) {
	svc := newTestService(&memStore{})

	reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com","name":42,"role":null}`))
	require.NoError(t, err)
	assert.Equal(t, float64(42), reg.Name)
	assert.Nil(t, reg.Role)
}

func TestRegisterRequiresEmail(t *testing.T) {
	bodies := map[string]string{
		"missing":        `{"name":"Ann"}`,
		"empty":          `{"email":""}`,
		"empty body":     ``,
		"null":           `null`,
		"whitespace":     " \n",
		"upper-case key": `{"EMAIL":"a@b.com"}`,
		"title-case key": `{"Email":"a@b.com","Name":"Ann"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			store := &memStore{}
			svc := newTestService(store)

			_, err := svc.Register(context.Background(), []byte(body))

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "Email is required", vErr.Message)
			assert.Empty(t, store.puts)
		})
	}
}

func TestRegisterMatchesKeysExactly(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com","Email":"","name":"Ann","Name":"Bob","Timestamp":"2024-01-01T00:00:00"}`))
	require.NoError(t, err)

	require.Len(t, store.puts, 1)
	assert.Equal(t, "a@b.com", reg.Email)
	assert.Equal(t, "Ann", reg.Name)
	assert.Equal(t, "2026-03-14T09:30:00.123456", reg.Timestamp)
}

func TestRegisterMalformedBodyIsInternal(t *testing.T) {
	for _, body := range []string{`{"email":`, `["a@b.com"]`, `{"email":5}`, `"a@b.com"`} {
		store := &memStore{}
		_, err := newTestService(store).Register(context.Background(), []byte(body))

		var iErr *InternalError
		require.ErrorAs(t, err, &iErr, body)
		assert.Empty(t, store.puts)
	}
}

func TestRegisterStoreFailureIsInternal(t *testing.T) {
	cause := errors.New("ProvisionedThroughputExceededException")
	svc := newTestService(&memStore{err: cause})

	_, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com"}`))

	var iErr *InternalError
	require.ErrorAs(t, err, &iErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, iErr.Error(), "ProvisionedThroughputExceededException")
}

func TestRegisterGeneratesDistinctIDs(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		reg, err := svc.Register(context.Background(), []byte(`{"email":"a@b.com"}`))
		require.NoError(t, err)
		require.NotEmpty(t, reg.ID)
		require.False(t, seen[reg.ID], "duplicate id %s", reg.ID)
		seen[reg.ID] = true

		_, err = time.Parse(models.TimeLayout, reg.CreatedAt)
		require.NoError(t, err)
	}
}
