package happiness

import (
	"fmt"

	"happiness-etl/internal/dataset"
)

// Continent labels used by the country lookup and the model's indicator
// columns.
const (
	ContinentAfrica       = "Africa"
	ContinentAsia         = "Asia"
	ContinentEurope       = "Europe"
	ContinentNorthAmerica = "North America"
	ContinentOceania      = "Oceania"
	ContinentSouthAmerica = "South America"
)

// Continents lists every continent label in the order the model's indicator
// columns use.
var Continents = []string{
	ContinentAfrica,
	ContinentAsia,
	ContinentEurope,
	ContinentNorthAmerica,
	ContinentOceania,
	ContinentSouthAmerica,
}

// CountryContinents maps country names as they appear in the report CSVs to
// a continent label. Spelling variants across years ("Trinidad and Tobago" vs
// "Trinidad & Tobago", "Somaliland region" vs "Somaliland Region") each get
// their own entry. Countries absent from the table map to a missing value.
var CountryContinents = map[string]string{
	"Switzerland":              ContinentEurope,
	"Iceland":                  ContinentEurope,
	"Denmark":                  ContinentEurope,
	"Norway":                   ContinentEurope,
	"Canada":                   ContinentNorthAmerica,
	"Finland":                  ContinentEurope,
	"Netherlands":              ContinentEurope,
	"Sweden":                   ContinentEurope,
	"New Zealand":              ContinentOceania,
	"Australia":                ContinentOceania,
	"Israel":                   ContinentAsia,
	"Costa Rica":               ContinentNorthAmerica,
	"Austria":                  ContinentEurope,
	"Mexico":                   ContinentNorthAmerica,
	"United States":            ContinentNorthAmerica,
	"Brazil":                   ContinentSouthAmerica,
	"Luxembourg":               ContinentEurope,
	"Ireland":                  ContinentEurope,
	"Belgium":                  ContinentEurope,
	"United Arab Emirates":     ContinentAsia,
	"United Kingdom":           ContinentEurope,
	"Oman":                     ContinentAsia,
	"Venezuela":                ContinentSouthAmerica,
	"Singapore":                ContinentAsia,
	"Panama":                   ContinentNorthAmerica,
	"Germany":                  ContinentEurope,
	"Chile":                    ContinentSouthAmerica,
	"Qatar":                    ContinentAsia,
	"France":                   ContinentEurope,
	"Argentina":                ContinentSouthAmerica,
	"Czech Republic":           ContinentEurope,
	"Uruguay":                  ContinentSouthAmerica,
	"Colombia":                 ContinentSouthAmerica,
	"Thailand":                 ContinentAsia,
	"Saudi Arabia":             ContinentAsia,
	"Spain":                    ContinentEurope,
	"Malta":                    ContinentEurope,
	"Taiwan":                   ContinentAsia,
	"Kuwait":                   ContinentAsia,
	"Suriname":                 ContinentSouthAmerica,
	"Trinidad and Tobago":      ContinentNorthAmerica,
	"El Salvador":              ContinentNorthAmerica,
	"Guatemala":                ContinentNorthAmerica,
	"Uzbekistan":               ContinentAsia,
	"Slovakia":                 ContinentEurope,
	"Japan":                    ContinentAsia,
	"South Korea":              ContinentAsia,
	"Ecuador":                  ContinentSouthAmerica,
	"Bahrain":                  ContinentAsia,
	"Italy":                    ContinentEurope,
	"Bolivia":                  ContinentSouthAmerica,
	"Moldova":                  ContinentEurope,
	"Paraguay":                 ContinentSouthAmerica,
	"Kazakhstan":               ContinentAsia,
	"Slovenia":                 ContinentEurope,
	"Lithuania":                ContinentEurope,
	"Nicaragua":                ContinentNorthAmerica,
	"Peru":                     ContinentSouthAmerica,
	"Belarus":                  ContinentEurope,
	"Poland":                   ContinentEurope,
	"Malaysia":                 ContinentAsia,
	"Croatia":                  ContinentEurope,
	"Libya":                    ContinentAfrica,
	"Russia":                   ContinentEurope,
	"Jamaica":                  ContinentNorthAmerica,
	"North Cyprus":             ContinentEurope,
	"Cyprus":                   ContinentEurope,
	"Algeria":                  ContinentAfrica,
	"Kosovo":                   ContinentEurope,
	"Turkmenistan":             ContinentAsia,
	"Mauritius":                ContinentAfrica,
	"Hong Kong":                ContinentAsia,
	"Estonia":                  ContinentEurope,
	"Indonesia":                ContinentAsia,
	"Vietnam":                  ContinentAsia,
	"Turkey":                   ContinentAsia,
	"Kyrgyzstan":               ContinentAsia,
	"Nigeria":                  ContinentAfrica,
	"Bhutan":                   ContinentAsia,
	"Azerbaijan":               ContinentAsia,
	"Pakistan":                 ContinentAsia,
	"Jordan":                   ContinentAsia,
	"Montenegro":               ContinentEurope,
	"China":                    ContinentAsia,
	"Zambia":                   ContinentAfrica,
	"Romania":                  ContinentEurope,
	"Serbia":                   ContinentEurope,
	"Portugal":                 ContinentEurope,
	"Latvia":                   ContinentEurope,
	"Philippines":              ContinentAsia,
	"Somaliland region":        ContinentAfrica,
	"Morocco":                  ContinentAfrica,
	"Macedonia":                ContinentEurope,
	"Mozambique":               ContinentAfrica,
	"Albania":                  ContinentEurope,
	"Bosnia and Herzegovina":   ContinentEurope,
	"Lesotho":                  ContinentAfrica,
	"Dominican Republic":       ContinentNorthAmerica,
	"Laos":                     ContinentAsia,
	"Mongolia":                 ContinentAsia,
	"Swaziland":                ContinentAfrica,
	"Greece":                   ContinentEurope,
	"Lebanon":                  ContinentAsia,
	"Hungary":                  ContinentEurope,
	"Honduras":                 ContinentNorthAmerica,
	"Tajikistan":               ContinentAsia,
	"Tunisia":                  ContinentAfrica,
	"Palestinian Territories":  ContinentAsia,
	"Bangladesh":               ContinentAsia,
	"Iran":                     ContinentAsia,
	"Ukraine":                  ContinentEurope,
	"Iraq":                     ContinentAsia,
	"South Africa":             ContinentAfrica,
	"Ghana":                    ContinentAfrica,
	"Zimbabwe":                 ContinentAfrica,
	"Liberia":                  ContinentAfrica,
	"India":                    ContinentAsia,
	"Sudan":                    ContinentAfrica,
	"Haiti":                    ContinentNorthAmerica,
	"Congo (Kinshasa)":         ContinentAfrica,
	"Nepal":                    ContinentAsia,
	"Ethiopia":                 ContinentAfrica,
	"Sierra Leone":             ContinentAfrica,
	"Mauritania":               ContinentAfrica,
	"Kenya":                    ContinentAfrica,
	"Djibouti":                 ContinentAfrica,
	"Armenia":                  ContinentAsia,
	"Botswana":                 ContinentAfrica,
	"Myanmar":                  ContinentAsia,
	"Georgia":                  ContinentAsia,
	"Malawi":                   ContinentAfrica,
	"Sri Lanka":                ContinentAsia,
	"Cameroon":                 ContinentAfrica,
	"Bulgaria":                 ContinentEurope,
	"Egypt":                    ContinentAfrica,
	"Yemen":                    ContinentAsia,
	"Angola":                   ContinentAfrica,
	"Mali":                     ContinentAfrica,
	"Congo (Brazzaville)":      ContinentAfrica,
	"Comoros":                  ContinentAfrica,
	"Uganda":                   ContinentAfrica,
	"Senegal":                  ContinentAfrica,
	"Gabon":                    ContinentAfrica,
	"Niger":                    ContinentAfrica,
	"Cambodia":                 ContinentAsia,
	"Tanzania":                 ContinentAfrica,
	"Madagascar":               ContinentAfrica,
	"Central African Republic": ContinentAfrica,
	"Chad":                     ContinentAfrica,
	"Guinea":                   ContinentAfrica,
	"Ivory Coast":              ContinentAfrica,
	"Burkina Faso":             ContinentAfrica,
	"Afghanistan":              ContinentAsia,
	"Rwanda":                   ContinentAfrica,
	"Benin":                    ContinentAfrica,
	"Syria":                    ContinentAsia,
	"Burundi":                  ContinentAfrica,
	"Togo":                     ContinentAfrica,
	"Puerto Rico":              ContinentNorthAmerica,
	"Belize":                   ContinentNorthAmerica,
	"Somalia":                  ContinentAfrica,
	"Somaliland Region":        ContinentAfrica,
	"Namibia":                  ContinentAfrica,
	"South Sudan":              ContinentAfrica,
	"Taiwan Province of China": ContinentAsia,
	"Hong Kong S.A.R., China":  ContinentAsia,
	"Trinidad & Tobago":        ContinentNorthAmerica,
	"Northern Cyprus":          ContinentEurope,
	"North Macedonia":          ContinentEurope,
	"Gambia":                   ContinentAfrica,
}

// MapCountryToContinent adds a Continent column from the country lookup.
// Countries missing from CountryContinents produce an empty cell; that is a
// data-quality gap for the caller to weigh, not an error. The dataset is
// modified in place.
func MapCountryToContinent(ds *dataset.Dataset) error {
	countries, err := ds.Column("Country")
	if err != nil {
		return fmt.Errorf("mapping continents: %w", err)
	}
	continents := make([]string, len(countries))
	for i, c := range countries {
		continents[i] = CountryContinents[c]
	}
	return ds.SetColumn("Continent", continents)
}
