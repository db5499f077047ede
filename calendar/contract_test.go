package calendar_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
)

// The adapter packages imported by this test binary register themselves
// in init; the registry tests read those registrations.

func TestLookupSystem(t *testing.T) {
	g, ok := calendar.LookupSystem("gregorian")
	require.True(t, ok)
	assert.True(t, g.Caps.Dates)
	assert.False(t, g.Caps.Times)
	assert.False(t, g.Approximate)

	h, ok := calendar.LookupSystem("hebrew")
	require.True(t, ok)
	assert.True(t, h.Approximate)

	u, ok := calendar.LookupSystem("unix-seconds")
	require.True(t, ok)
	assert.True(t, u.Caps.Times)

	_, ok = calendar.LookupSystem("mayan")
	assert.False(t, ok)
}

func TestSystemsSorted(t *testing.T) {
	all := calendar.Systems()
	require.NotEmpty(t, all)
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	}))

	names := make(map[string]bool, len(all))
	for _, s := range all {
		names[s.Name] = true
	}
	for _, want := range []string{"gregorian", "julian", "hebrew", "unix-seconds", "unix-millis"} {
		assert.True(t, names[want], "missing %s", want)
	}
}
