package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchSet_DropsImmutableFieldsAndStamps(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	fields := map[string]any{
		"role":      "Senior Backend Developer",
		"id":        "hijack",
		"createdAt": time.Unix(0, 0),
	}

	set := PatchSet(fields, now)

	assert.Equal(t, map[string]any{
		"role":      "Senior Backend Developer",
		"updatedAt": now,
	}, set)
	assert.Contains(t, fields, "id", "input must not be mutated")
}

func TestPatchSet_EmptyPatchStillStamps(t *testing.T) {
	now := time.Now()
	assert.Equal(t, map[string]any{"updatedAt": now}, PatchSet(nil, now))
}

func TestApply_DefaultsToSystemClock(t *testing.T) {
	o := Apply()
	got := o.Clock()
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, got, got.Truncate(time.Millisecond))

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o = Apply(WithClock(func() time.Time { return fixed }))
	assert.Equal(t, fixed, o.Clock())
}

func TestCheckField(t *testing.T) {
	assert.NoError(t, CheckField("createdAt"))
	assert.NoError(t, CheckField("isFeatured"))
	assert.Error(t, CheckField(""))
	assert.Error(t, CheckField("year'; drop table skills; --"))
	assert.Error(t, CheckField("a.b"))
}
