package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceFromSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     AttendanceType
	}{
		{"ps", AttendanceType{PS: true}},
		{"ambulatorio", AttendanceType{Ambulatorio: true}},
		{"externo", AttendanceType{Externo: true}},
		{"internacao", AttendanceType{Internacao: true}},
		{"todos", AttendanceType{Todos: true}},
		{"", AttendanceType{}},
		{"bogus", AttendanceType{}},
	}
	for _, tt := range tests {
		got := AttendanceFromSelector(tt.selector)
		assert.Equal(t, tt.want, got, "selector %q", tt.selector)
	}
}

func TestAttendanceRoundTrip(t *testing.T) {
	selectors := []string{"ps", "ambulatorio", "externo", "internacao", "todos", ""}
	for _, sel := range selectors {
		a := AttendanceFromSelector(sel)
		j, err := a.ToJSONB()
		require.NoError(t, err)
		back, err := AttendanceFromJSONB(j)
		require.NoError(t, err)
		assert.Equal(t, a, back, "selector %q", sel)
		assert.Equal(t, sel, back.Selector())
	}
}
