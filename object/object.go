// Package object maps parsed .sc catalogue trees onto astronomical-object
// records and back. Absent numeric fields carry the no-data NaN sentinel,
// absent strings are empty; the writer omits both, so a record survives a
// serialise/parse round trip unchanged.
package object

import (
	"github.com/avikara/semath/caltime"
	"github.com/avikara/semath/ieee754"
	"github.com/avikara/semath/linalg"
)

// NoData returns the sentinel marking an absent numeric field.
func NoData() float64 { return ieee754.NoData() }

// IsNoData reports whether a field is absent.
func IsNoData(v float64) bool { return ieee754.IsNoData(v) }

func noDataVec3() linalg.Vec3 {
	n := ieee754.NoData()
	return linalg.Vec3{X: n, Y: n, Z: n}
}

func isNoDataVec3(v linalg.Vec3) bool {
	return ieee754.IsNoData(v.X) && ieee754.IsNoData(v.Y) && ieee754.IsNoData(v.Z)
}

// RotationParams is the uniform rotation model.
type RotationParams struct {
	Period      float64 // seconds
	Epoch       float64 // JD
	Obliquity   float64 // degrees
	EqAscendNode float64 // degrees
	Offset      float64 // degrees
	Precession  float64 // seconds
	TidalLocked bool
}

// OrbitParams is the Keplerian orbit block of a record. Distances are in
// metres, angles in degrees, times in seconds; epochs are Julian days.
type OrbitParams struct {
	// Binary star orbits replace the element set with a separation and
	// position angle.
	Binary        bool
	Separation    float64
	PositionAngle float64

	AnalyticModel   string
	RefPlane        string
	Epoch           float64
	Period          float64
	SemiMajorAxis   float64
	PericenterDist  float64
	GravParam       float64
	Eccentricity    float64
	Inclination     float64
	AscendingNode   float64
	AscNodePreces   float64
	ArgOfPericenter float64
	ArgOfPeriPreces float64
	MeanAnomaly     float64
}

// LifeParams describes a biosphere block.
type LifeParams struct {
	Class      string
	Type       string
	Biome      []string
	Panspermia bool
}

// AtmosphereParams is the atmosphere block, composition in percent by
// volume.
type AtmosphereParams struct {
	Model       string
	Height      float64 // metres
	Density     float64 // kg/m^3 at surface
	Pressure    float64 // Pa
	Greenhouse  float64 // K
	Composition map[string]float64
}

// RingsParams is the ring system block, radii in metres.
type RingsParams struct {
	InnerRadius float64
	OuterRadius float64
	Texture     string
	Brightness  float64
}

// Object is the astronomical-object record the mapper fills from a parsed
// catalogue entry.
type Object struct {
	Type        string // Star, Planet, Moon, Barycenter, ...
	Name        []string
	ParentBody  string
	Class       string
	SpecClass   string // stars only
	AsterType   string // asteroids only
	DiscMethod  string
	DiscDate    caltime.Date
	DateUpdated caltime.Date

	Mass          float64 // kg
	Radius        float64 // metres (mean)
	Dimensions    linalg.Vec3 // metres
	Oblateness    float64
	InertiaMoment float64
	AlbedoBond    float64
	AlbedoGeom    float64
	Brightness    float64
	Color         linalg.Vec3
	Temperature   float64 // K
	Luminosity    float64 // W, visual
	LumBol        float64 // W, bolometric
	FeH           float64
	Age           float64 // years
	KerrSpin      float64
	KerrCharge    float64

	FixedPos bool
	Position linalg.Vec3

	Rotation   RotationParams
	Orbit      OrbitParams
	NoLife     bool
	Life       *LifeParams
	Interior   map[string]float64
	Atmosphere *AtmosphereParams
	Rings      *RingsParams
}

// New returns a record with every numeric field at the sentinel.
func New() *Object {
	n := ieee754.NoData()
	return &Object{
		Mass:          n,
		Radius:        n,
		Dimensions:    noDataVec3(),
		Oblateness:    n,
		InertiaMoment: n,
		AlbedoBond:    n,
		AlbedoGeom:    n,
		Brightness:    n,
		Color:         noDataVec3(),
		Temperature:   n,
		Luminosity:    n,
		LumBol:        n,
		FeH:           n,
		Age:           n,
		KerrSpin:      n,
		KerrCharge:    n,
		Position:      noDataVec3(),
		Rotation: RotationParams{
			Period: n, Epoch: n, Obliquity: n, EqAscendNode: n,
			Offset: n, Precession: n,
		},
		Orbit: OrbitParams{
			Separation: n, PositionAngle: n, Epoch: n, Period: n,
			SemiMajorAxis: n, PericenterDist: n, GravParam: n,
			Eccentricity: n, Inclination: n, AscendingNode: n,
			AscNodePreces: n, ArgOfPericenter: n, ArgOfPeriPreces: n,
			MeanAnomaly: n,
		},
	}
}
