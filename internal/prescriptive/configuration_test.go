package prescriptive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/prescriptive"
)

func TestConfigurationSanitizeKeepsCutsOrdered(testInstance *testing.T) {
	defaults := prescriptive.DefaultConfiguration()
	testCases := []struct {
		name                 string
		lowQuantile          float64
		highQuantile         float64
		highRatio            float64
		averageRatio         float64
		expectedLow          float64
		expectedHigh         float64
		expectedHighRatio    float64
		expectedAverageRatio float64
	}{
		{
			name:                 "valid_values_kept",
			lowQuantile:          0.2,
			highQuantile:         0.8,
			highRatio:            1.3,
			averageRatio:         0.7,
			expectedLow:          0.2,
			expectedHigh:         0.8,
			expectedHighRatio:    1.3,
			expectedAverageRatio: 0.7,
		},
		{
			name:                 "inverted_quantiles_reset_together",
			lowQuantile:          0.8,
			highQuantile:         0.7,
			highRatio:            1.3,
			averageRatio:         0.7,
			expectedLow:          defaults.AssetLowQuantile,
			expectedHigh:         defaults.AssetHighQuantile,
			expectedHighRatio:    1.3,
			expectedAverageRatio: 0.7,
		},
		{
			name:                 "high_quantile_out_of_range",
			lowQuantile:          0.5,
			highQuantile:         1.2,
			highRatio:            1.3,
			averageRatio:         0.7,
			expectedLow:          defaults.AssetLowQuantile,
			expectedHigh:         defaults.AssetHighQuantile,
			expectedHighRatio:    1.3,
			expectedAverageRatio: 0.7,
		},
		{
			name:                 "inverted_ratios_reset_together",
			lowQuantile:          0.2,
			highQuantile:         0.8,
			highRatio:            0.5,
			averageRatio:         0.95,
			expectedLow:          0.2,
			expectedHigh:         0.8,
			expectedHighRatio:    defaults.DriverHighPerformerRatio,
			expectedAverageRatio: defaults.DriverAveragePerformerRatio,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			configuration := prescriptive.DefaultConfiguration()
			configuration.AssetLowQuantile = testCase.lowQuantile
			configuration.AssetHighQuantile = testCase.highQuantile
			configuration.DriverHighPerformerRatio = testCase.highRatio
			configuration.DriverAveragePerformerRatio = testCase.averageRatio

			sanitized := configuration.Sanitize()
			require.Equal(testInstance, testCase.expectedLow, sanitized.AssetLowQuantile)
			require.Equal(testInstance, testCase.expectedHigh, sanitized.AssetHighQuantile)
			require.Less(testInstance, sanitized.AssetLowQuantile, sanitized.AssetHighQuantile)
			require.Equal(testInstance, testCase.expectedHighRatio, sanitized.DriverHighPerformerRatio)
			require.Equal(testInstance, testCase.expectedAverageRatio, sanitized.DriverAveragePerformerRatio)
		})
	}
}
