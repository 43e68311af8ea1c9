package cache

import (
	"testing"
	"time"

	"mnestswap/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSessionCache_SetAndGet(t *testing.T) {
	c, err := NewSessionCache(128, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	session := domain.Session{
		ID:   uuid.New(),
		Form: domain.FormState{Source: "10", Destination: "50.000000"},
	}

	require.NoError(t, c.Set(session))

	got, ok := c.Get(session.ID)
	require.True(t, ok)
	require.Equal(t, session, got)
}

func TestSessionCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewSessionCache(64, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get(uuid.New())
	require.False(t, ok)
	require.Equal(t, domain.Session{}, got)
}

func TestSessionCache_SetOverwrites(t *testing.T) {
	c, err := NewSessionCache(64, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	id := uuid.New()
	require.NoError(t, c.Set(domain.Session{ID: id, Form: domain.FormState{Source: "1", Destination: "5.000000"}}))
	require.NoError(t, c.Set(domain.Session{ID: id}))

	got, ok := c.Get(id)
	require.True(t, ok)
	require.True(t, got.Form.Empty())
}

func TestSessionCache_DeleteEvictsOnlySpecifiedSession(t *testing.T) {
	c, err := NewSessionCache(256, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	drop := domain.Session{ID: uuid.New()}
	keep := domain.Session{ID: uuid.New(), WalletAddress: "EQabc"}
	require.NoError(t, c.Set(drop))
	require.NoError(t, c.Set(keep))

	c.Delete(drop.ID)
	c.cache.Wait()

	_, ok := c.Get(drop.ID)
	require.False(t, ok)

	got, ok := c.Get(keep.ID)
	require.True(t, ok)
	require.Equal(t, keep, got)
}

func TestSessionCache_Expires(t *testing.T) {
	c, err := NewSessionCache(64, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	id := uuid.New()
	require.NoError(t, c.Set(domain.Session{ID: id}))

	require.Eventually(t, func() bool {
		_, ok := c.Get(id)
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
