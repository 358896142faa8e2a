// Package happiness implements the World Happiness survey preparation stages:
// loading yearly CSVs, harmonizing column names across report years, enriching
// rows with Year and Continent, and merging the years into one dataset.
package happiness

import (
	"fmt"

	"happiness-etl/internal/dataset"
)

// ColumnSynonyms maps every column spelling that appears in the 2015-2019
// report CSVs to its canonical name. The reports renamed and re-punctuated
// columns almost every year (spaces vs dots, wording changes), so the table
// carries each historical form verbatim.
var ColumnSynonyms = map[string]string{
	"Country":                       "Country",
	"Country or region":             "Country",
	"Dystopia Residual":             "Dystopia_Residual",
	"Dystopia.Residual":             "Dystopia_Residual",
	"Economy (GDP per Capita)":      "Economy",
	"Economy..GDP.per.Capita.":      "Economy",
	"Family":                        "Social_Support",
	"Freedom":                       "Freedom",
	"Freedom to make life choices":  "Freedom",
	"GDP per capita":                "Economy",
	"Generosity":                    "Generosity",
	"Happiness Rank":                "Happiness_Rank",
	"Happiness Score":               "Happiness_Score",
	"Happiness.Rank":                "Happiness_Rank",
	"Happiness.Score":               "Happiness_Score",
	"Health (Life Expectancy)":      "Health",
	"Health..Life.Expectancy.":      "Health",
	"Healthy life expectancy":       "Health",
	"Lower Confidence Interval":     "Lower_Confidence_Interval",
	"Overall rank":                  "Happiness_Rank",
	"Perceptions of corruption":     "Trust",
	"Trust (Government Corruption)": "Trust",
	"Trust..Government.Corruption.": "Trust",
	"Region":                        "Region",
	"Score":                         "Happiness_Score",
	"Social support":                "Social_Support",
	"Standard Error":                "Standard_Error",
	"Upper Confidence Interval":     "Upper_Confidence_Interval",
	"Whisker.high":                  "Whisker_High",
	"Whisker.low":                   "Whisker_Low",
}

// NormalizeColumnNames renames every synonym column in every dataset to its
// canonical name. Datasets are modified in place and the same mapping is
// returned. After a successful call no dataset exposes a raw synonym key.
func NormalizeColumnNames(byYear map[int]*dataset.Dataset) (map[int]*dataset.Dataset, error) {
	for year, ds := range byYear {
		if err := ds.RenameColumns(ColumnSynonyms); err != nil {
			return nil, fmt.Errorf("normalizing %d columns: %w", year, err)
		}
	}
	return byYear, nil
}
