package navstack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beep206/CyberVPN-sub013/pkg/navstack"
)

func TestStack_PushAndCurrent(t *testing.T) {
	s := navstack.New()
	assert.Equal(t, "", s.Current())
	assert.Equal(t, 0, s.Len())

	s.Push("/home")
	s.Push("/plans")
	assert.Equal(t, "/plans", s.Current())
	assert.Equal(t, 2, s.Len())
}

func TestStack_ReplaceTopPreservesHistory(t *testing.T) {
	s := navstack.New("/home", "/settings")

	s.ReplaceTop("/login")
	assert.Equal(t, "/login", s.Current())
	assert.Equal(t, []string{"/home", "/login"}, s.History())
}

func TestStack_ReplaceTopOnEmpty(t *testing.T) {
	s := navstack.New()
	s.ReplaceTop("/login")
	assert.Equal(t, "/login", s.Current())
	assert.Equal(t, 1, s.Len())
}

func TestStack_Pop(t *testing.T) {
	s := navstack.New("/home", "/plans")

	entry := s.Pop()
	require.NotNil(t, entry)
	assert.Equal(t, "/plans", entry.Path)
	assert.Equal(t, "/home", s.Current())

	s.Pop()
	assert.Nil(t, s.Pop(), "pop on empty stack returns nil")
}
