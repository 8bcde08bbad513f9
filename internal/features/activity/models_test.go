package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeString(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeAllTime, "all_time"},
		{ScopeWeekly, "weekly"},
		{ScopeMonthly, "monthly"},
		{Scope(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.scope.String())
	}
}

func TestScopeValid(t *testing.T) {
	for _, scope := range AllScopes {
		assert.True(t, scope.Valid(), "scope %s", scope)
	}
	assert.False(t, Scope(-1).Valid())
	assert.False(t, Scope(99).Valid())
}

func TestResettableScopes(t *testing.T) {
	assert.Equal(t, []Scope{ScopeWeekly, ScopeMonthly}, ResettableScopes)
	assert.NotContains(t, ResettableScopes, ScopeAllTime)
}
