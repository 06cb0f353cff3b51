package prescriptive

import (
	"math"
	"sort"
)

// Bin is a right-closed interval whose lower bound is the upper bound of the previous bin.
type Bin struct {
	Label string
	Upper float64
}

// Binning assigns values to ordered bins. The lowest bound is inclusive.
type Binning struct {
	Lowest float64
	Bins   []Bin
}

// Locate returns the index of the bin containing value.
func (binning Binning) Locate(value float64) (int, bool) {
	if math.IsNaN(value) || value < binning.Lowest {
		return 0, false
	}
	for binIndex, bin := range binning.Bins {
		if value <= bin.Upper {
			return binIndex, true
		}
	}
	return 0, false
}

// Label returns the label of a bin index.
func (binning Binning) Label(binIndex int) string {
	return binning.Bins[binIndex].Label
}

type recordGroup[Key comparable] struct {
	key     Key
	indexes []int
}

// groupIndexes partitions record indexes by key and orders the groups with less.
func groupIndexes[Key comparable](recordCount int, keyOf func(recordIndex int) (Key, bool), less func(first Key, second Key) bool) []recordGroup[Key] {
	positions := map[Key]int{}
	groups := make([]recordGroup[Key], 0)
	for recordIndex := 0; recordIndex < recordCount; recordIndex++ {
		key, eligible := keyOf(recordIndex)
		if !eligible {
			continue
		}
		position, known := positions[key]
		if !known {
			position = len(groups)
			positions[key] = position
			groups = append(groups, recordGroup[Key]{key: key})
		}
		groups[position].indexes = append(groups[position].indexes, recordIndex)
	}
	sort.SliceStable(groups, func(first, second int) bool {
		return less(groups[first].key, groups[second].key)
	})
	return groups
}

func meanAt(values []float64, indexes []int) float64 {
	if len(indexes) == 0 {
		return 0
	}
	return sumAt(values, indexes) / float64(len(indexes))
}

func sumAt(values []float64, indexes []int) float64 {
	var sum float64
	for _, index := range indexes {
		sum += values[index]
	}
	return sum
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

// argMinimum returns the first index holding the smallest value, or -1 for an empty range.
func argMinimum(count int, valueAt func(index int) float64) int {
	minimumIndex := -1
	minimumValue := math.Inf(1)
	for index := 0; index < count; index++ {
		if value := valueAt(index); minimumIndex < 0 || value < minimumValue {
			minimumIndex = index
			minimumValue = value
		}
	}
	return minimumIndex
}

// linearQuantile interpolates between closest ranks, matching the usual dataframe default.
func linearQuantile(values []float64, quantile float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sortedValues := append([]float64(nil), values...)
	sort.Float64s(sortedValues)
	position := quantile * float64(len(sortedValues)-1)
	lowerIndex := int(math.Floor(position))
	upperIndex := int(math.Ceil(position))
	fraction := position - float64(lowerIndex)
	return sortedValues[lowerIndex] + fraction*(sortedValues[upperIndex]-sortedValues[lowerIndex])
}

// competitionRanks assigns each value one plus the number of strictly smaller values.
func competitionRanks(values []float64) []int {
	ranks := make([]int, len(values))
	for index, value := range values {
		rank := 1
		for _, other := range values {
			if other < value {
				rank++
			}
		}
		ranks[index] = rank
	}
	return ranks
}
