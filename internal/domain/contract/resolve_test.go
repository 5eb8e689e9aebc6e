package contract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPickApplicablePicksLatestStart(t *testing.T) {
	contracts := []Contract{
		{ID: "old", StartDate: day("2024-01-01")},
		{ID: "newer", StartDate: day("2025-06-01")},
		{ID: "future", StartDate: day("2026-03-01")},
	}

	picked := PickApplicable(contracts, 1, 2026)
	require.NotNil(t, picked)
	assert.Equal(t, "newer", picked.ID)
}

func TestPickApplicableBoundary(t *testing.T) {
	// A contract starting exactly on the first of the month qualifies.
	contracts := []Contract{
		{ID: "exact", StartDate: day("2026-01-01")},
	}

	picked := PickApplicable(contracts, 1, 2026)
	require.NotNil(t, picked)
	assert.Equal(t, "exact", picked.ID)

	// One day later it no longer covers December.
	assert.Nil(t, PickApplicable(contracts, 12, 2025))
}

func TestPickApplicableTieKeepsInputOrder(t *testing.T) {
	// Two contracts sharing the maximal start date: the winner is
	// unspecified. Today the resolver keeps the first in input order;
	// this pins the current behavior without promising it.
	contracts := []Contract{
		{ID: "first", StartDate: day("2025-01-01")},
		{ID: "second", StartDate: day("2025-01-01")},
	}

	picked := PickApplicable(contracts, 6, 2025)
	require.NotNil(t, picked)
	assert.Equal(t, "first", picked.ID)
}

func TestPickApplicableIgnoresEndDate(t *testing.T) {
	// An expired contract is still picked: end dates are deliberately
	// not consulted by the resolver.
	ended := day("2025-01-31")
	contracts := []Contract{
		{ID: "expired", StartDate: day("2024-01-01"), EndDate: &ended},
	}

	picked := PickApplicable(contracts, 1, 2026)
	require.NotNil(t, picked)
	assert.Equal(t, "expired", picked.ID)
}

func TestPickApplicableNone(t *testing.T) {
	assert.Nil(t, PickApplicable(nil, 1, 2026))

	contracts := []Contract{
		{ID: "future", StartDate: day("2026-06-01")},
	}
	assert.Nil(t, PickApplicable(contracts, 1, 2026))
}

func TestPickApplicableAliasesInput(t *testing.T) {
	contracts := []Contract{
		{ID: "a", StartDate: day("2024-01-01"), PayRate: decimal.NewFromInt(100)},
		{ID: "b", StartDate: day("2025-01-01"), PayRate: decimal.NewFromInt(200)},
	}

	picked := PickApplicable(contracts, 1, 2026)
	require.NotNil(t, picked)
	picked.PayRate = decimal.NewFromInt(999)

	// The pointer aliases the slice element; callers copy before
	// mutating. This documents the aliasing.
	assert.Equal(t, "999", contracts[1].PayRate.String())
}
