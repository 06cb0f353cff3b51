package prescriptive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompetitionRanks(testInstance *testing.T) {
	require.Equal(testInstance, []int{1, 1, 3}, competitionRanks([]float64{50, 50, 70}))
	require.Equal(testInstance, []int{2, 1}, competitionRanks([]float64{100, 50}))
}

func TestLinearQuantile(testInstance *testing.T) {
	values := []float64{90, 10, 30}
	require.InDelta(testInstance, 23.2, linearQuantile(values, 0.33), 1e-9)
	require.InDelta(testInstance, 50.4, linearQuantile(values, 0.67), 1e-9)
	require.Equal(testInstance, 0.0, linearQuantile(nil, 0.5))
}

func TestArgMinimumPrefersFirst(testInstance *testing.T) {
	values := []float64{3, 1, 1, 2}
	require.Equal(testInstance, 1, argMinimum(len(values), func(index int) float64 { return values[index] }))
	require.Equal(testInstance, -1, argMinimum(0, func(int) float64 { return 0 }))
}

func TestGroupIndexesOrdersGroups(testInstance *testing.T) {
	keys := []string{"b", "a", "b", "c"}
	groups := groupIndexes(len(keys), func(index int) (string, bool) {
		return keys[index], keys[index] != "c"
	}, func(first string, second string) bool { return first < second })
	require.Len(testInstance, groups, 2)
	require.Equal(testInstance, "a", groups[0].key)
	require.Equal(testInstance, []int{0, 2}, groups[1].indexes)
}
