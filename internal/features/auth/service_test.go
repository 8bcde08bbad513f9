package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRegistry — in-memory реализация Registry для тестов.
type memRegistry struct {
	groups      map[int64]bool
	supervisors map[int64]bool
}

func newMemRegistry() *memRegistry {
	return &memRegistry{
		groups:      make(map[int64]bool),
		supervisors: make(map[int64]bool),
	}
}

func (m *memRegistry) AddGroup(_ context.Context, chatID int64) (bool, error) {
	if m.groups[chatID] {
		return false, nil
	}
	m.groups[chatID] = true
	return true, nil
}

func (m *memRegistry) GroupExists(_ context.Context, chatID int64) (bool, error) {
	return m.groups[chatID], nil
}

func (m *memRegistry) AddSupervisor(_ context.Context, userID int64) (bool, error) {
	if m.supervisors[userID] {
		return false, nil
	}
	m.supervisors[userID] = true
	return true, nil
}

func (m *memRegistry) SupervisorExists(_ context.Context, userID int64) (bool, error) {
	return m.supervisors[userID], nil
}

const ownerID = int64(100)

func TestRegisterGroup_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemRegistry()
	svc := NewService(repo, ownerID)

	result, err := svc.RegisterGroup(ctx, -42)
	require.NoError(t, err)
	assert.Equal(t, RegisterAdded, result)

	allowed, err := svc.IsGroupAllowed(ctx, -42)
	require.NoError(t, err)
	assert.True(t, allowed)

	// Повторные вызовы сходятся к тому же состоянию
	for i := 0; i < 3; i++ {
		result, err = svc.RegisterGroup(ctx, -42)
		require.NoError(t, err)
		assert.Equal(t, RegisterAlreadyPresent, result)
	}

	allowed, err = svc.IsGroupAllowed(ctx, -42)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestIsGroupAllowed_UnknownChat(t *testing.T) {
	svc := NewService(newMemRegistry(), ownerID)

	allowed, err := svc.IsGroupAllowed(context.Background(), -1)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPromoteSupervisor_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemRegistry()
	svc := NewService(repo, ownerID)

	result, err := svc.PromoteSupervisor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, PromoteAdded, result)

	result, err = svc.PromoteSupervisor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, PromoteAlreadyPresent, result)

	ok, err := svc.IsSupervisor(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Владельца назначить супервайзером нельзя: отказ без записи, всегда.
func TestPromoteSupervisor_RejectsOwner(t *testing.T) {
	ctx := context.Background()
	repo := newMemRegistry()
	svc := NewService(repo, ownerID)

	for i := 0; i < 2; i++ {
		result, err := svc.PromoteSupervisor(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, PromoteRejectedIsOwner, result)
	}
	assert.Empty(t, repo.supervisors)
}

func TestIsSupervisor_OwnerImplied(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRegistry(), ownerID)

	assert.True(t, svc.IsOwner(ownerID))
	assert.False(t, svc.IsOwner(7))

	ok, err := svc.IsSupervisor(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, ok, "владелец неявно супервайзер")

	ok, err = svc.IsSupervisor(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "added", PromoteAdded.String())
	assert.Equal(t, "already_present", PromoteAlreadyPresent.String())
	assert.Equal(t, "rejected_is_owner", PromoteRejectedIsOwner.String())
	assert.Equal(t, "added", RegisterAdded.String())
	assert.Equal(t, "already_present", RegisterAlreadyPresent.String())
}
