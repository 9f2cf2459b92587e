package object

import (
	"sort"
	"strconv"
	"strings"

	"github.com/avikara/semath/linalg"
	"github.com/avikara/semath/scs"
)

// Writing back is symmetric with the mapper: fields at the sentinel (or
// empty strings) are omitted, numbers are emitted in SI with shortest
// round-trip formatting, so a re-parse reproduces the record bit for bit.

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func addFloat(t *scs.Table, key string, v float64) {
	if IsNoData(v) {
		return
	}
	t.Entries = append(t.Entries, scs.KeyValue{
		Key: key,
		Values: []scs.Value{{
			Kind: scs.NumberValue, Elem: scs.NumberValue,
			Items: []string{formatFloat(v)}, Base: 10,
		}},
	})
}

func addString(t *scs.Table, key, v string) {
	if v == "" {
		return
	}
	t.Entries = append(t.Entries, scs.KeyValue{
		Key: key,
		Values: []scs.Value{{
			Kind: scs.StringValue, Elem: scs.StringValue,
			Items: []string{`"` + v + `"`},
		}},
	})
}

func addBool(t *scs.Table, key string, v bool) {
	if !v {
		return
	}
	t.Entries = append(t.Entries, scs.KeyValue{
		Key: key,
		Values: []scs.Value{{
			Kind: scs.BooleanValue, Elem: scs.BooleanValue,
			Items: []string{"true"},
		}},
	})
}

func addVec3(t *scs.Table, key string, v linalg.Vec3) {
	if isNoDataVec3(v) {
		return
	}
	t.Entries = append(t.Entries, scs.KeyValue{
		Key: key,
		Values: []scs.Value{{
			Kind: scs.ArrayValue, Elem: scs.NumberValue,
			Items: []string{formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z)},
			Base:  10,
		}},
	})
}

func addDate(t *scs.Table, key string, d interface{ IsValid() bool }, rendered string) {
	if !d.IsValid() {
		return
	}
	addString(t, key, rendered)
}

// ToTable converts the record to a parse tree rooted at a single keyed
// entry.
func (o *Object) ToTable() *scs.Table {
	sub := &scs.Table{}

	addString(sub, "ParentBody", o.ParentBody)
	addString(sub, "Class", o.Class)
	addString(sub, "SpecClass", o.SpecClass)
	addString(sub, "AsterType", o.AsterType)
	addString(sub, "DiscMethod", o.DiscMethod)
	addDate(sub, "DiscDate", o.DiscDate, o.DiscDate.String())
	addDate(sub, "DateUpdated", o.DateUpdated, o.DateUpdated.String())

	addFloat(sub, "Mass", o.Mass)
	addFloat(sub, "Radius", o.Radius)
	addVec3(sub, "Dimensions", o.Dimensions)
	addFloat(sub, "Oblateness", o.Oblateness)
	addFloat(sub, "InertiaMoment", o.InertiaMoment)
	addFloat(sub, "AlbedoBond", o.AlbedoBond)
	addFloat(sub, "AlbedoGeom", o.AlbedoGeom)
	addFloat(sub, "Brightness", o.Brightness)
	addVec3(sub, "Color", o.Color)
	addFloat(sub, "Temperature", o.Temperature)
	addFloat(sub, "Luminosity", o.Luminosity)
	addFloat(sub, "LumBol", o.LumBol)
	addFloat(sub, "FeH", o.FeH)
	addFloat(sub, "Age", o.Age)
	addFloat(sub, "KerrSpin", o.KerrSpin)
	addFloat(sub, "KerrCharge", o.KerrCharge)

	addBool(sub, "FixedPos", o.FixedPos)
	addVec3(sub, "Position", o.Position)
	addBool(sub, "NoLife", o.NoLife)

	addFloat(sub, "RotationPeriod", o.Rotation.Period)
	addFloat(sub, "RotationEpoch", o.Rotation.Epoch)
	addFloat(sub, "Obliquity", o.Rotation.Obliquity)
	addFloat(sub, "EqAscendNode", o.Rotation.EqAscendNode)
	addFloat(sub, "RotationOffset", o.Rotation.Offset)
	addFloat(sub, "Precession", o.Rotation.Precession)
	addBool(sub, "TidalLocked", o.Rotation.TidalLocked)

	if orbit := o.orbitTable(); len(orbit.Entries) > 0 {
		key := "Orbit"
		if o.Orbit.Binary {
			key = "BinaryOrbit"
		}
		sub.Entries = append(sub.Entries, scs.KeyValue{Key: key, Sub: orbit})
	}

	if o.Life != nil {
		life := &scs.Table{}
		addString(life, "Class", o.Life.Class)
		addString(life, "Type", o.Life.Type)
		addString(life, "Biome", strings.Join(o.Life.Biome, "/"))
		addBool(life, "Panspermia", o.Life.Panspermia)
		sub.Entries = append(sub.Entries, scs.KeyValue{Key: "Life", Sub: life})
	}

	if len(o.Interior) > 0 {
		comp := &scs.Table{}
		for _, k := range sortedKeys(o.Interior) {
			addFloat(comp, k, o.Interior[k])
		}
		interior := &scs.Table{Entries: []scs.KeyValue{{Key: "Composition", Sub: comp}}}
		sub.Entries = append(sub.Entries, scs.KeyValue{Key: "Interior", Sub: interior})
	}

	if o.Atmosphere != nil {
		at := &scs.Table{}
		addString(at, "Model", o.Atmosphere.Model)
		addFloat(at, "Height", o.Atmosphere.Height)
		addFloat(at, "Density", o.Atmosphere.Density)
		addFloat(at, "Pressure", o.Atmosphere.Pressure)
		addFloat(at, "Greenhouse", o.Atmosphere.Greenhouse)
		if len(o.Atmosphere.Composition) > 0 {
			comp := &scs.Table{}
			for _, k := range sortedKeys(o.Atmosphere.Composition) {
				addFloat(comp, k, o.Atmosphere.Composition[k])
			}
			at.Entries = append(at.Entries, scs.KeyValue{Key: "Composition", Sub: comp})
		}
		sub.Entries = append(sub.Entries, scs.KeyValue{Key: "Atmosphere", Sub: at})
	}

	if o.Rings != nil {
		rings := &scs.Table{}
		addFloat(rings, "InnerRadius", o.Rings.InnerRadius)
		addFloat(rings, "OuterRadius", o.Rings.OuterRadius)
		addString(rings, "Texture", o.Rings.Texture)
		addFloat(rings, "Brightness", o.Rings.Brightness)
		sub.Entries = append(sub.Entries, scs.KeyValue{Key: "Rings", Sub: rings})
	}

	root := &scs.Table{}
	kv := scs.KeyValue{Key: o.Type, Sub: sub}
	if len(o.Name) > 0 {
		kv.Values = []scs.Value{{
			Kind: scs.StringValue, Elem: scs.StringValue,
			Items: []string{`"` + strings.Join(o.Name, "/") + `"`},
		}}
	}
	root.Entries = append(root.Entries, kv)
	return root
}

func (o *Object) orbitTable() *scs.Table {
	t := &scs.Table{}
	addString(t, "AnalyticModel", o.Orbit.AnalyticModel)
	addString(t, "RefPlane", o.Orbit.RefPlane)
	addFloat(t, "Epoch", o.Orbit.Epoch)
	addFloat(t, "Period", o.Orbit.Period)
	addFloat(t, "SemiMajorAxis", o.Orbit.SemiMajorAxis)
	addFloat(t, "PericenterDist", o.Orbit.PericenterDist)
	addFloat(t, "GravParam", o.Orbit.GravParam)
	addFloat(t, "Eccentricity", o.Orbit.Eccentricity)
	addFloat(t, "Inclination", o.Orbit.Inclination)
	addFloat(t, "AscendingNode", o.Orbit.AscendingNode)
	addFloat(t, "AscNodePreces", o.Orbit.AscNodePreces)
	addFloat(t, "ArgOfPericenter", o.Orbit.ArgOfPericenter)
	addFloat(t, "ArgOfPeriPreces", o.Orbit.ArgOfPeriPreces)
	addFloat(t, "MeanAnomaly", o.Orbit.MeanAnomaly)
	addFloat(t, "Separation", o.Orbit.Separation)
	addFloat(t, "PositionAngle", o.Orbit.PositionAngle)
	return t
}

// Source renders the record as .sc script text.
func (o *Object) Source() string { return o.ToTable().Source() }

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
