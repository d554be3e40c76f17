package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "love, nature,dawn", []string{"love", "nature", "dawn"}},
		{"empty entries dropped", "love,, ,nature,", []string{"love", "nature"}},
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeTags(tt.raw))
		})
	}
}

func TestSessionIsAdmin(t *testing.T) {
	var absent *Session
	require.False(t, absent.IsAdmin())
	require.False(t, (&Session{Role: RoleUser}).IsAdmin())
	require.True(t, (&Session{Role: RoleAdmin}).IsAdmin())
}

func TestPoemOrderings(t *testing.T) {
	older := Poem{CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Views: 10, ReadingTime: 2}
	newer := Poem{CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Views: 3, ReadingTime: 5}

	require.True(t, PoemNewerFirst(newer, older))
	require.False(t, PoemNewerFirst(older, newer))
	require.True(t, PoemMostViewedFirst(older, newer))
	require.True(t, PoemQuickestReadFirst(older, newer))
}
