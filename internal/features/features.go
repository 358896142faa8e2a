// Package features derives the model-ready frame from the merged happiness
// dataset: continent indicator flags, the pairwise interaction columns the
// regression was trained with, and the predicted score from the trained
// model's exported coefficients. No training happens here; scoring is a dot
// product over fixed weights.
package features

import (
	"fmt"
	"strconv"

	"happiness-etl/internal/dataset"
	"happiness-etl/internal/happiness"
)

// Numeric source columns a row must carry (non-missing) to enter the frame.
var requiredNumeric = []string{
	"Social_Support",
	"Year",
	"Trust",
	"Generosity",
	"Health",
	"Economy",
	"Freedom",
	"Happiness_Score",
}

// FrameColumns lists the output columns in destination-table order.
var FrameColumns = []string{
	"Social_Support",
	"Year",
	"Trust",
	"Generosity",
	"Health",
	"Economy",
	"Freedom",
	"Continent_Africa",
	"Continent_Asia",
	"Continent_Europe",
	"Continent_North_America",
	"Continent_Oceania",
	"Continent_South_America",
	"Economy_Health",
	"Trust_Freedom",
	"Economy_Trust",
	"Trust_Health",
	"Happiness_Score",
	"Predicted_Happiness_Score",
}

// continentColumn maps a continent label to its indicator column name.
var continentColumn = map[string]string{
	happiness.ContinentAfrica:       "Continent_Africa",
	happiness.ContinentAsia:         "Continent_Asia",
	happiness.ContinentEurope:       "Continent_Europe",
	happiness.ContinentNorthAmerica: "Continent_North_America",
	happiness.ContinentOceania:      "Continent_Oceania",
	happiness.ContinentSouthAmerica: "Continent_South_America",
}

// RowError reports a merged-table row that could not enter the model frame.
// These rows would violate the destination schema's NOT NULL columns, so they
// are dropped and reported instead of persisted.
type RowError struct {
	Row    int // zero-based row index in the merged dataset
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// BuildModelFrame derives the model frame from the merged dataset.
// Rows with a missing or non-numeric required value, or a missing continent,
// are skipped and reported. A missing required column is an error: the input
// years did not share enough columns to feed the model at all.
func BuildModelFrame(merged *dataset.Dataset) (*dataset.Dataset, []RowError, error) {
	for _, col := range append(append([]string{}, requiredNumeric...), "Continent") {
		if !merged.HasColumn(col) {
			return nil, nil, fmt.Errorf("merged dataset is missing column %q", col)
		}
	}

	frame, err := dataset.New(FrameColumns...)
	if err != nil {
		return nil, nil, err
	}

	var skipped []RowError
	for i := 0; i < merged.NumRows(); i++ {
		values := make(map[string]float64, len(requiredNumeric))
		reason := ""
		for _, col := range requiredNumeric {
			raw, _ := merged.Cell(i, col)
			if raw == "" {
				reason = fmt.Sprintf("missing %s", col)
				break
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				reason = fmt.Sprintf("non-numeric %s: %q", col, raw)
				break
			}
			values[col] = v
		}
		if reason == "" {
			continent, _ := merged.Cell(i, "Continent")
			if _, known := continentColumn[continent]; !known {
				if continent == "" {
					reason = "missing Continent"
				} else {
					reason = fmt.Sprintf("unknown continent %q", continent)
				}
			} else {
				if err := frame.AppendRow(frameRow(values, continent)); err != nil {
					return nil, nil, err
				}
			}
		}
		if reason != "" {
			skipped = append(skipped, RowError{Row: i, Reason: reason})
		}
	}

	return frame, skipped, nil
}

// frameRow builds one output row in FrameColumns order.
func frameRow(v map[string]float64, continent string) []string {
	interactions := map[string]float64{
		"Economy_Health": v["Economy"] * v["Health"],
		"Trust_Freedom":  v["Trust"] * v["Freedom"],
		"Economy_Trust":  v["Economy"] * v["Trust"],
		"Trust_Health":   v["Trust"] * v["Health"],
	}
	predicted := Predict(v, interactions, continent)

	row := make([]string, 0, len(FrameColumns))
	for _, col := range FrameColumns {
		switch {
		case col == "Year":
			row = append(row, strconv.Itoa(int(v["Year"])))
		case col == "Predicted_Happiness_Score":
			row = append(row, formatFloat(predicted))
		case continentColumn[continent] == col:
			row = append(row, "1")
		case isContinentColumn(col):
			row = append(row, "0")
		default:
			if iv, ok := interactions[col]; ok {
				row = append(row, formatFloat(iv))
			} else {
				row = append(row, formatFloat(v[col]))
			}
		}
	}
	return row
}

func isContinentColumn(col string) bool {
	for _, c := range continentColumn {
		if c == col {
			return true
		}
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
