package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careeriq/internal/types"
)

func TestProfileFor_KnownRoles(t *testing.T) {
	for _, role := range Names() {
		profile := ProfileFor(role)
		assert.Equal(t, role, profile.Name)
	}
}

func TestProfileFor_UnknownRoleFallsBack(t *testing.T) {
	profile := ProfileFor("Underwater Basket Weaver")

	assert.Equal(t, DefaultRole, profile.Name)
}

func TestProfiles_EveryTierPopulated(t *testing.T) {
	for _, role := range Names() {
		profile := ProfileFor(role)
		for _, priority := range PriorityOrder {
			require.NotEmpty(t, profile.Fundamentals[priority], "%s fundamentals %s", role, priority)
			require.NotEmpty(t, profile.Skills[priority], "%s skills %s", role, priority)
		}
	}
}

func TestContainsTerm(t *testing.T) {
	backend := ProfileFor("Backend Developer")

	assert.True(t, backend.ContainsTerm("caching"))
	assert.True(t, backend.ContainsTerm("CACHING"))
	assert.True(t, backend.ContainsTerm("cach")) // substring match
	assert.True(t, backend.ContainsTerm("api security"))
	assert.False(t, backend.ContainsTerm("pandas"))
}

func TestPriorityOrder(t *testing.T) {
	assert.Equal(t, []string{types.PriorityHigh, types.PriorityMedium, types.PriorityLow}, PriorityOrder)
}
