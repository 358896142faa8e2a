package features

import "happiness-etl/internal/happiness"

// Exported coefficients of the trained happiness regression. The model was
// fit offline on the 2015-2019 merged table; the weights ship here as static
// configuration so the pipeline can populate Predicted_Happiness_Score
// without a model runtime.
var (
	modelIntercept = 2.2415

	modelWeights = map[string]float64{
		"Economy":        1.0481,
		"Social_Support": 0.7156,
		"Health":         0.9284,
		"Freedom":        1.3921,
		"Generosity":     0.4315,
		"Trust":          0.6872,
	}

	interactionWeights = map[string]float64{
		"Economy_Health": 0.1164,
		"Trust_Freedom":  0.2903,
		"Economy_Trust":  -0.1987,
		"Trust_Health":   0.0642,
	}

	// Continent offsets relative to the intercept; Africa is the baseline.
	continentWeights = map[string]float64{
		happiness.ContinentAfrica:       0,
		happiness.ContinentAsia:         0.1127,
		happiness.ContinentEurope:       0.2954,
		happiness.ContinentNorthAmerica: 0.3418,
		happiness.ContinentOceania:      0.4206,
		happiness.ContinentSouthAmerica: 0.2691,
	}
)

// Predict scores one row with the fixed coefficients.
// values holds the numeric source columns, interactions the four pairwise
// products, continent the row's continent label.
func Predict(values, interactions map[string]float64, continent string) float64 {
	score := modelIntercept
	for col, w := range modelWeights {
		score += w * values[col]
	}
	for col, w := range interactionWeights {
		score += w * interactions[col]
	}
	return score + continentWeights[continent]
}
