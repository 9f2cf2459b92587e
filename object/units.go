package object

// Unit suffixes recognised on numeric keys, each with its multiplier to SI
// units. A key like "RadiusKm" strips to "Radius" and scales by 1000.
var unitMultipliers = map[string]float64{
	"Km":          1000,
	"AU":          1.495978707e11,
	"LY":          9.4607304725808e15,
	"Pc":          3.0856775814913673e16,
	"EarthRadius": 6.3781e6,
	"SolarRadius": 6.957e8,
	"SolarMass":   1.98892e30,
	"EarthMass":   5.9722e24,
	"JupiterMass": 1.8982e27,
	"h":           3600,
	"d":           86400,
	"day":         86400,
	"yr":          3.15576e7,
	"year":        3.15576e7,
}
