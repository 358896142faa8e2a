package schema

// ModelTable is the ml_model destination table. Every data column is NOT
// NULL: a merged row missing any of these fields is dropped before the write,
// not nulled into the table.
var ModelTable = Table{
	Name: "ml_model",
	Columns: []Column{
		{Name: "id", Type: FieldSerial},
		{Name: "Social_Support", Type: FieldFloat},
		{Name: "Year", Type: FieldInt},
		{Name: "Trust", Type: FieldFloat},
		{Name: "Generosity", Type: FieldFloat},
		{Name: "Health", Type: FieldFloat},
		{Name: "Economy", Type: FieldFloat},
		{Name: "Freedom", Type: FieldFloat},
		{Name: "Continent_Africa", Type: FieldInt},
		{Name: "Continent_Asia", Type: FieldInt},
		{Name: "Continent_Europe", Type: FieldInt},
		{Name: "Continent_North_America", Type: FieldInt},
		{Name: "Continent_Oceania", Type: FieldInt},
		{Name: "Continent_South_America", Type: FieldInt},
		{Name: "Economy_Health", Type: FieldFloat},
		{Name: "Trust_Freedom", Type: FieldFloat},
		{Name: "Economy_Trust", Type: FieldFloat},
		{Name: "Trust_Health", Type: FieldFloat},
		{Name: "Happiness_Score", Type: FieldFloat},
		{Name: "Predicted_Happiness_Score", Type: FieldFloat},
	},
}
