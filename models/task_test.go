package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusTodo, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{"", false},
		{"archived", false},
		{"TODO", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ValidStatus(tc.status), "status %q", tc.status)
	}
}
