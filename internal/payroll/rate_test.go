package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

func TestResolvePayRateCategory(t *testing.T) {
	assert.Equal(t, domain.PayRateStandard, ResolvePayRateCategory(false, local(2025, 6, 25, 18, 59)))
	assert.Equal(t, domain.PayRateEnhanced, ResolvePayRateCategory(false, local(2025, 6, 25, 19, 0)))
	assert.Equal(t, domain.PayRateEnhanced, ResolvePayRateCategory(false, local(2025, 6, 26, 3, 59)))
	assert.Equal(t, domain.PayRateStandard, ResolvePayRateCategory(false, local(2025, 6, 26, 4, 0)))
	assert.Equal(t, domain.PayRateSupervisor, ResolvePayRateCategory(true, local(2025, 6, 25, 12, 0)))
	assert.Equal(t, domain.PayRateSupervisor, ResolvePayRateCategory(true, local(2025, 6, 25, 22, 0)))
}

func TestResolveShiftCategory(t *testing.T) {
	evening := local(2025, 6, 25, 21, 0)

	assert.Equal(t, domain.PayRateEnhanced, ResolveShiftCategory(nil, false, evening))
	assert.Equal(t, domain.PayRateSupervisor, ResolveShiftCategory(nil, true, evening))

	override := domain.PayRateStandard
	assert.Equal(t, domain.PayRateStandard, ResolveShiftCategory(&override, true, evening))
}

func TestParsePayRateCategory(t *testing.T) {
	category, err := ParsePayRateCategory(" supervisor ")
	require.NoError(t, err)
	assert.Equal(t, domain.PayRateSupervisor, category)

	category, err = ParsePayRateCategory("Enhanced")
	require.NoError(t, err)
	assert.Equal(t, domain.PayRateEnhanced, category)

	_, err = ParsePayRateCategory("overtime")
	assert.ErrorIs(t, err, ErrUnknownPayRate)
}
