package object

import (
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/avikara/semath/caltime"
	"github.com/avikara/semath/ieee754"
	"github.com/avikara/semath/linalg"
	"github.com/avikara/semath/scs"
)

// The mapper's error policy is soft: unknown keys are skipped, a value of
// the wrong kind leaves its field at the sentinel and emits a warning
// through the catalogue debug channel. Only a missing tree is a hard
// error.

// ErrNoTable is returned when a nil table is mapped.
var ErrNoTable = errors.New("object: no parse tree supplied")

// objectKeys are the top-level record types the loader recognises.
var objectKeys = map[string]bool{
	"Star": true, "Planet": true, "Moon": true, "DwarfPlanet": true,
	"Asteroid": true, "Comet": true, "Barycenter": true, "Nebula": true,
	"Cluster": true, "Galaxy": true,
}

// getFloat reads a scalar numeric key, honouring a unit suffix; absent or
// mistyped keys leave the sentinel.
func getFloat(t *scs.Table, key string) float64 {
	kv := t.FindWithPrefix(key)
	if kv == nil || len(kv.Values) == 0 {
		return ieee754.NoData()
	}
	f, err := kv.Values[0].Number(0)
	if err != nil {
		warnSkip(key, err)
		return ieee754.NoData()
	}
	if kv.Key != key {
		if mult, ok := unitMultipliers[strings.TrimPrefix(kv.Key, key)]; ok {
			return f * mult
		}
		// Some other key sharing the prefix: not ours.
		exact := t.Find(key)
		if exact == nil || len(exact.Values) == 0 {
			return ieee754.NoData()
		}
		if f, err = exact.Values[0].Number(0); err != nil {
			warnSkip(key, err)
			return ieee754.NoData()
		}
	}
	return f
}

func getString(t *scs.Table, key string) string {
	kv := t.Find(key)
	if kv == nil || len(kv.Values) == 0 {
		return ""
	}
	s, err := kv.Values[0].Str(0)
	if err != nil {
		warnSkip(key, err)
		return ""
	}
	return s
}

func getBool(t *scs.Table, key string) bool {
	kv := t.Find(key)
	if kv == nil || len(kv.Values) == 0 {
		return false
	}
	b, err := kv.Values[0].Bool(0)
	if err != nil {
		warnSkip(key, err)
		return false
	}
	return b
}

// getVec3 reads an array-valued key, padding missing components with the
// sentinel.
func getVec3(t *scs.Table, key string) linalg.Vec3 {
	kv := t.Find(key)
	if kv == nil || len(kv.Values) == 0 {
		return noDataVec3()
	}
	fs, err := kv.Values[0].Floats()
	if err != nil {
		warnSkip(key, err)
		return noDataVec3()
	}
	out := noDataVec3()
	if len(fs) > 0 {
		out.X = fs[0]
	}
	if len(fs) > 1 {
		out.Y = fs[1]
	}
	if len(fs) > 2 {
		out.Z = fs[2]
	}
	return out
}

func getDate(t *scs.Table, key string) caltime.Date {
	kv := t.Find(key)
	if kv == nil || len(kv.Values) == 0 {
		return caltime.Date{}
	}
	dt, err := kv.Values[0].DateTime()
	if err != nil {
		warnSkip(key, err)
		return caltime.Date{}
	}
	return dt.Date
}

func warnSkip(key string, err error) {
	if scs.LogLevel() >= 1 {
		log.Printf("object: %v", errors.Wrapf(err, "key %q left at no-data", key))
	}
}

// LoadObjects maps every recognised record of a parsed catalogue.
func LoadObjects(tbl *scs.Table) ([]*Object, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	var out []*Object
	for i := range tbl.Entries {
		kv := &tbl.Entries[i]
		if !objectKeys[kv.Key] {
			continue
		}
		out = append(out, LoadObject(kv))
	}
	return out, nil
}

// LoadObject maps one record. The entry's key becomes the object type, its
// string value the slash-separated name list, and its sub-table the field
// source.
func LoadObject(kv *scs.KeyValue) *Object {
	obj := New()
	obj.Type = kv.Key
	if len(kv.Values) > 0 {
		if name, err := kv.Values[0].Str(0); err == nil {
			obj.Name = strings.Split(name, "/")
		}
	}
	t := kv.Sub
	if t == nil {
		return obj
	}

	obj.ParentBody = getString(t, "ParentBody")
	obj.Class = getString(t, "Class")
	obj.SpecClass = getString(t, "SpecClass")
	obj.AsterType = getString(t, "AsterType")
	obj.DiscMethod = getString(t, "DiscMethod")
	obj.DiscDate = getDate(t, "DiscDate")
	obj.DateUpdated = getDate(t, "DateUpdated")

	obj.Mass = getFloat(t, "Mass")
	obj.Radius = getFloat(t, "Radius")
	obj.Dimensions = getVec3(t, "Dimensions")
	obj.Oblateness = getFloat(t, "Oblateness")
	obj.InertiaMoment = getFloat(t, "InertiaMoment")
	obj.AlbedoBond = getFloat(t, "AlbedoBond")
	obj.AlbedoGeom = getFloat(t, "AlbedoGeom")
	obj.Brightness = getFloat(t, "Brightness")
	obj.Color = getVec3(t, "Color")
	obj.Temperature = getFloat(t, "Temperature")
	obj.Luminosity = getFloat(t, "Luminosity")
	obj.LumBol = getFloat(t, "LumBol")
	obj.FeH = getFloat(t, "FeH")
	obj.Age = getFloat(t, "Age")
	obj.KerrSpin = getFloat(t, "KerrSpin")
	obj.KerrCharge = getFloat(t, "KerrCharge")

	obj.FixedPos = getBool(t, "FixedPos")
	obj.Position = getVec3(t, "Position")
	obj.NoLife = getBool(t, "NoLife")

	obj.Rotation = RotationParams{
		Period:       getFloat(t, "RotationPeriod"),
		Epoch:        getFloat(t, "RotationEpoch"),
		Obliquity:    getFloat(t, "Obliquity"),
		EqAscendNode: getFloat(t, "EqAscendNode"),
		Offset:       getFloat(t, "RotationOffset"),
		Precession:   getFloat(t, "Precession"),
		TidalLocked:  getBool(t, "TidalLocked"),
	}

	if okv := t.Find("Orbit"); okv != nil {
		obj.Orbit = loadOrbit(okv)
	} else if bkv := t.Find("BinaryOrbit"); bkv != nil {
		obj.Orbit = loadOrbit(bkv)
		obj.Orbit.Binary = true
	}

	if lkv := t.Find("Life"); lkv != nil && lkv.Sub != nil {
		life := &LifeParams{
			Class:      getString(lkv.Sub, "Class"),
			Type:       getString(lkv.Sub, "Type"),
			Panspermia: getBool(lkv.Sub, "Panspermia"),
		}
		if bio := getString(lkv.Sub, "Biome"); bio != "" {
			life.Biome = strings.Split(bio, "/")
		}
		obj.Life = life
	}

	if ikv := t.Find("Interior"); ikv != nil && ikv.Sub != nil {
		if ckv := ikv.Sub.Find("Composition"); ckv != nil && ckv.Sub != nil {
			obj.Interior = map[string]float64{}
			for i := range ckv.Sub.Entries {
				e := &ckv.Sub.Entries[i]
				if len(e.Values) == 0 {
					continue
				}
				if f, err := e.Values[0].Number(0); err == nil {
					obj.Interior[e.Key] = f
				}
			}
		}
	}

	if akv := t.Find("Atmosphere"); akv != nil && akv.Sub != nil {
		at := &AtmosphereParams{
			Model:      getString(akv.Sub, "Model"),
			Height:     getFloat(akv.Sub, "Height"),
			Density:    getFloat(akv.Sub, "Density"),
			Pressure:   getFloat(akv.Sub, "Pressure"),
			Greenhouse: getFloat(akv.Sub, "Greenhouse"),
		}
		if ckv := akv.Sub.Find("Composition"); ckv != nil && ckv.Sub != nil {
			at.Composition = map[string]float64{}
			for i := range ckv.Sub.Entries {
				e := &ckv.Sub.Entries[i]
				if len(e.Values) == 0 {
					continue
				}
				if f, err := e.Values[0].Number(0); err == nil {
					at.Composition[e.Key] = f
				}
			}
		}
		obj.Atmosphere = at
	}

	if rkv := t.Find("Rings"); rkv != nil && rkv.Sub != nil {
		obj.Rings = &RingsParams{
			InnerRadius: getFloat(rkv.Sub, "InnerRadius"),
			OuterRadius: getFloat(rkv.Sub, "OuterRadius"),
			Texture:     getString(rkv.Sub, "Texture"),
			Brightness:  getFloat(rkv.Sub, "Brightness"),
		}
	}

	return obj
}

func loadOrbit(kv *scs.KeyValue) OrbitParams {
	o := New().Orbit
	t := kv.Sub
	if t == nil {
		return o
	}
	o.AnalyticModel = getString(t, "AnalyticModel")
	o.RefPlane = getString(t, "RefPlane")
	o.Epoch = getFloat(t, "Epoch")
	o.Period = getFloat(t, "Period")
	o.SemiMajorAxis = getFloat(t, "SemiMajorAxis")
	o.PericenterDist = getFloat(t, "PericenterDist")
	o.GravParam = getFloat(t, "GravParam")
	o.Eccentricity = getFloat(t, "Eccentricity")
	o.Inclination = getFloat(t, "Inclination")
	o.AscendingNode = getFloat(t, "AscendingNode")
	o.AscNodePreces = getFloat(t, "AscNodePreces")
	o.ArgOfPericenter = getFloat(t, "ArgOfPericenter")
	o.ArgOfPeriPreces = getFloat(t, "ArgOfPeriPreces")
	o.MeanAnomaly = getFloat(t, "MeanAnomaly")
	o.Separation = getFloat(t, "Separation")
	o.PositionAngle = getFloat(t, "PositionAngle")
	return o
}
