package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardwake/battlesim/bgerr"
	"github.com/shardwake/battlesim/catalog"
)

func TestDefaultProviderLooksUpKnownMove(t *testing.T) {
	p := catalog.Default()
	m, err := p.Move("tackle")
	require.NoError(t, err)
	require.Equal(t, catalog.CategoryPhysical, m.Category)
	require.Equal(t, 40, m.BasePower)
}

func TestUnknownMoveIsUnknownIdentifier(t *testing.T) {
	p := catalog.Default()
	_, err := p.Move("hyperbeamz")
	require.Error(t, err)
	var bgErr *bgerr.Error
	require.ErrorAs(t, err, &bgErr)
	require.Equal(t, bgerr.CodeUnknownIdentifier, bgErr.Code)
}

func TestTypeChartDualTypeIsProductOfBothMultipliers(t *testing.T) {
	tc := catalog.StandardTypeChart()
	// water vs golem (rock/ground): 2 * 2 = 4
	require.Equal(t, 4.0, tc.Multiplier(catalog.TypeWater, catalog.TypeRock, catalog.TypeGround))
}

func TestTypeChartNeutralDefault(t *testing.T) {
	tc := catalog.NewTypeChart()
	require.Equal(t, 1.0, tc.Multiplier(catalog.TypeNormal, catalog.TypeDragon, catalog.TypeNone))
}

func TestRuleSetGenDefaults(t *testing.T) {
	gen1 := catalog.NewRuleSet(catalog.WithGen(1))
	require.True(t, gen1.CombinedSpecial)
	require.Equal(t, 0.25, gen1.ParalysisSpeedFactor)
	require.Equal(t, 2.0, gen1.CritMultiplier)

	gen9 := catalog.NewRuleSet(catalog.WithGen(9))
	require.False(t, gen9.CombinedSpecial)
	require.Equal(t, 0.5, gen9.ParalysisSpeedFactor)
	require.Equal(t, 1.5, gen9.CritMultiplier)
}

func TestRuleSetOptionsApplyAfterGenDefaults(t *testing.T) {
	rs := catalog.NewRuleSet(catalog.WithGen(1), catalog.WithFreezeClause(), catalog.WithSleepClause())
	require.True(t, rs.FreezeClause)
	require.True(t, rs.SleepClause)
	require.True(t, rs.CombinedSpecial)
}
