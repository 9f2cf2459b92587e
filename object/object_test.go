package object

import (
	"math"
	"testing"

	"github.com/avikara/semath/scs"
)

const earthSC = `
Planet "Earth/Sol III"
{
	ParentBody "Sun"
	Class "Terra"
	Mass 5.9722e24
	RadiusKm 6371
	Obliquity 23.44
	RotationPeriodh 23.93447
	AlbedoBond 0.306
	Color (0.3, 0.4, 0.8)
	DiscDate "1900-01-01"
	NoLife false
	Orbit
	{
		RefPlane "Ecliptic"
		SemiMajorAxisAU 1.0
		Period 31558149.5
		Eccentricity 0.0167
		Inclination 0.0
		AscendingNode 348.74
		ArgOfPericenter 114.21
		MeanAnomaly 358.617
		Epoch 2451545.0
	}
	Atmosphere
	{
		Height 100000
		Pressure 101325
		Composition
		{
			N2 78.08
			O2 20.95
			Ar 0.93
		}
	}
}
`

func parseOne(t *testing.T, src string) *Object {
	t.Helper()
	tbl, err := scs.NewParser().ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	objs, err := LoadObjects(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(objs) != 1 {
		t.Fatalf("objects = %d", len(objs))
	}
	return objs[0]
}

func TestLoadObject(t *testing.T) {
	obj := parseOne(t, earthSC)

	if obj.Type != "Planet" {
		t.Errorf("type = %q", obj.Type)
	}
	if len(obj.Name) != 2 || obj.Name[0] != "Earth" || obj.Name[1] != "Sol III" {
		t.Errorf("names = %v", obj.Name)
	}
	if obj.ParentBody != "Sun" || obj.Class != "Terra" {
		t.Errorf("parent/class = %q/%q", obj.ParentBody, obj.Class)
	}
	if obj.Mass != 5.9722e24 {
		t.Errorf("mass = %v", obj.Mass)
	}
	// RadiusKm: unit suffix stripped, multiplier applied.
	if obj.Radius != 6371*1000 {
		t.Errorf("radius = %v", obj.Radius)
	}
	// RotationPeriodh: hours to seconds.
	if math.Abs(obj.Rotation.Period-23.93447*3600) > 1e-6 {
		t.Errorf("rotation period = %v", obj.Rotation.Period)
	}
	if obj.Color.Y != 0.4 {
		t.Errorf("color = %v", obj.Color)
	}
	if obj.DiscDate.Year != 1900 {
		t.Errorf("disc date = %v", obj.DiscDate)
	}

	// Unset fields stay at the sentinel.
	if !IsNoData(obj.Temperature) || !IsNoData(obj.Luminosity) {
		t.Error("unset fields are not sentinel")
	}
	if !IsNoData(obj.Dimensions.X) {
		t.Error("unset vector is not sentinel")
	}

	// Orbit block, including its own unit suffix.
	if obj.Orbit.RefPlane != "Ecliptic" {
		t.Errorf("ref plane = %q", obj.Orbit.RefPlane)
	}
	if math.Abs(obj.Orbit.SemiMajorAxis-1.495978707e11) > 1 {
		t.Errorf("sma = %v", obj.Orbit.SemiMajorAxis)
	}
	if obj.Orbit.Eccentricity != 0.0167 {
		t.Errorf("e = %v", obj.Orbit.Eccentricity)
	}

	// Atmosphere block.
	if obj.Atmosphere == nil {
		t.Fatal("atmosphere missing")
	}
	if obj.Atmosphere.Pressure != 101325 {
		t.Errorf("pressure = %v", obj.Atmosphere.Pressure)
	}
	if obj.Atmosphere.Composition["N2"] != 78.08 {
		t.Errorf("composition = %v", obj.Atmosphere.Composition)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	obj := parseOne(t, `Star "X" { Mass 1 SomethingNobodyKnows 42 }`)
	if obj.Mass != 1 {
		t.Errorf("mass = %v", obj.Mass)
	}
}

func TestWrongKindLeavesSentinel(t *testing.T) {
	obj := parseOne(t, `Star "X" { Mass "heavy" }`)
	if !IsNoData(obj.Mass) {
		t.Errorf("mass = %v, want sentinel", obj.Mass)
	}
}

// P9: serialise, re-parse, compare bit for bit.
func TestRoundTrip(t *testing.T) {
	orig := parseOne(t, earthSC)
	src := orig.Source()
	back := parseOne(t, src)

	numPairs := [][2]float64{
		{orig.Mass, back.Mass},
		{orig.Radius, back.Radius},
		{orig.Rotation.Period, back.Rotation.Period},
		{orig.Rotation.Obliquity, back.Rotation.Obliquity},
		{orig.AlbedoBond, back.AlbedoBond},
		{orig.Color.X, back.Color.X},
		{orig.Color.Z, back.Color.Z},
		{orig.Orbit.SemiMajorAxis, back.Orbit.SemiMajorAxis},
		{orig.Orbit.Eccentricity, back.Orbit.Eccentricity},
		{orig.Orbit.MeanAnomaly, back.Orbit.MeanAnomaly},
		{orig.Atmosphere.Pressure, back.Atmosphere.Pressure},
		{orig.Atmosphere.Composition["O2"], back.Atmosphere.Composition["O2"]},
		{orig.Temperature, back.Temperature}, // sentinel stays sentinel
	}
	for i, pair := range numPairs {
		if math.Float64bits(pair[0]) != math.Float64bits(pair[1]) {
			t.Errorf("pair %d: %v != %v", i, pair[0], pair[1])
		}
	}

	strPairs := [][2]string{
		{orig.Type, back.Type},
		{orig.ParentBody, back.ParentBody},
		{orig.Class, back.Class},
		{orig.Orbit.RefPlane, back.Orbit.RefPlane},
	}
	for i, pair := range strPairs {
		if pair[0] != pair[1] {
			t.Errorf("string pair %d: %q != %q", i, pair[0], pair[1])
		}
	}
	if len(back.Name) != 2 || back.Name[0] != orig.Name[0] {
		t.Errorf("names = %v", back.Name)
	}
	if back.DiscDate != orig.DiscDate {
		t.Errorf("date = %v vs %v", back.DiscDate, orig.DiscDate)
	}
}

func TestOrbitState(t *testing.T) {
	obj := parseOne(t, earthSC)
	o := obj.Orbit

	// A full period brings the body back to the same position.
	p0, err := o.StateAt(2451545.0)
	if err != nil {
		t.Fatal(err)
	}
	p1, err := o.StateAt(2451545.0 + o.Period/86400)
	if err != nil {
		t.Fatal(err)
	}
	d := p1.Sub(p0)
	if dist := math.Sqrt(d.Dot(d)); dist > 1e-3*o.SemiMajorAxis {
		t.Errorf("period mismatch: moved %v m", dist)
	}

	// The radius stays between pericenter and apocenter.
	a, e := o.SemiMajorAxis, o.Eccentricity
	for _, djd := range []float64{0, 50, 123.4, 200} {
		p, err := o.StateAt(2451545.0 + djd)
		if err != nil {
			t.Fatal(err)
		}
		r := math.Sqrt(p.Dot(p))
		if r < a*(1-e)*0.999999 || r > a*(1+e)*1.000001 {
			t.Errorf("r = %v outside [%v, %v]", r, a*(1-e), a*(1+e))
		}
	}

	// Binary orbits refuse element evaluation.
	bin := New().Orbit
	bin.Binary = true
	if _, err := bin.StateAt(0); err != ErrBinaryOrbit {
		t.Errorf("err = %v", err)
	}
	// An empty orbit is underspecified.
	if _, err := New().Orbit.StateAt(0); err != ErrOrbitUnderspecified {
		t.Errorf("err = %v", err)
	}
}

func TestLoadMultiple(t *testing.T) {
	src := `
Star "Sun" { Mass 1.98892e30 }
Planet "Mercury" { ParentBody "Sun" }
Planet "Venus" { ParentBody "Sun" }
`
	tbl, err := scs.NewParser().ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	objs, err := LoadObjects(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(objs) != 3 {
		t.Fatalf("objects = %d", len(objs))
	}
	if objs[0].Type != "Star" || objs[2].Name[0] != "Venus" {
		t.Errorf("order broken: %v %v", objs[0].Type, objs[2].Name)
	}
}
