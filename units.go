/*
Copyright © 2018 the Measure authors.
This file is part of Measure.

Measure is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Measure is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Measure.  If not, see <http://www.gnu.org/licenses/>.
*/

package measure

import (
	"fmt"
	"strings"
)

// A UnitEntry describes one registered unit: its canonical key, the
// factor that converts one of it into the base unit of its kind, and
// any full names that resolve to it in addition to the key itself.
type UnitEntry struct {
	Key    string
	Factor float64
	Names  []string
}

// A Registry holds the units of one quantity kind. Registries are
// built during package initialization and are read-only afterwards;
// lookups are safe for concurrent use without locking.
type Registry struct {
	kind    Kind
	base    string
	entries []UnitEntry
	factors map[string]float64 // canonical key → factor to base unit
	aliases map[string]string  // normalized name → canonical key
}

func newRegistry(kind Kind, base string, entries []UnitEntry) *Registry {
	r := &Registry{
		kind:    kind,
		base:    base,
		entries: entries,
		factors: make(map[string]float64, len(entries)),
		aliases: make(map[string]string),
	}
	for _, e := range entries {
		if e.Factor <= 0 {
			panic(fmt.Errorf("measure: unit %q has non-positive factor %g", e.Key, e.Factor))
		}
		if _, ok := r.factors[e.Key]; ok {
			panic(fmt.Errorf("measure: duplicate unit key %q", e.Key))
		}
		r.factors[e.Key] = e.Factor
		for _, name := range e.Names {
			r.aliases[normalizeName(name)] = e.Key
		}
	}
	if f, ok := r.factors[base]; !ok || f != 1 {
		panic(fmt.Errorf("measure: base unit %q must be registered with factor 1", base))
	}
	return r
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Kind returns the quantity kind the registry holds units for.
func (r *Registry) Kind() Kind { return r.kind }

// BaseUnit returns the canonical key of the unit all magnitudes of
// this kind are stored in.
func (r *Registry) BaseUnit() string { return r.base }

// Entries returns all registered units in registration order.
func (r *Registry) Entries() []UnitEntry {
	return append([]UnitEntry(nil), r.entries...)
}

// Resolve translates a unit name into its canonical key. It accepts
// canonical keys, abbreviations, and full unit names; matching is
// case-insensitive and ignores surrounding whitespace.
func (r *Registry) Resolve(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if _, ok := r.factors[trimmed]; ok {
		return trimmed, nil
	}
	lower := strings.ToLower(trimmed)
	if _, ok := r.factors[lower]; ok {
		return lower, nil
	}
	if key, ok := r.aliases[lower]; ok {
		return key, nil
	}
	return "", &UnknownUnitError{Kind: r.kind, Name: name}
}

// Factor returns the conversion factor from the unit with the given
// canonical key to the base unit of the registry's kind.
func (r *Registry) Factor(key string) (float64, error) {
	f, ok := r.factors[key]
	if !ok {
		return 0, &UnknownUnitError{Kind: r.kind, Name: key}
	}
	return f, nil
}

// Convert expresses a base-unit magnitude in the named unit. This is
// the sole conversion primitive: every conversion divides the stored
// base-unit magnitude by the target unit's factor, so converting
// through an intermediate unit gives the same result as converting
// directly, up to floating-point rounding.
func (r *Registry) Convert(base float64, name string) (float64, error) {
	key, err := r.Resolve(name)
	if err != nil {
		return 0, err
	}
	return base / r.factors[key], nil
}

// distanceEntries lists every linear distance unit with its length in
// meters. The surveying and historical units carry the factors defined
// by their originating geodetic standards.
var distanceEntries = []UnitEntry{
	{Key: "m", Factor: 1, Names: []string{"meter", "metre"}},
	{Key: "km", Factor: 1000, Names: []string{"kilometer", "kilometre"}},
	{Key: "mi", Factor: 1609.344, Names: []string{"mile"}},
	{Key: "ft", Factor: 0.3048, Names: []string{"foot", "foot (international)"}},
	{Key: "yd", Factor: 0.9144, Names: []string{"yard"}},
	{Key: "inch", Factor: 0.0254, Names: []string{"inches"}},
	{Key: "cm", Factor: 0.01, Names: []string{"centimeter", "centimetre"}},
	{Key: "mm", Factor: 0.001, Names: []string{"millimeter", "millimetre"}},
	{Key: "um", Factor: 0.000001, Names: []string{"micrometer", "micrometre"}},
	{Key: "nm", Factor: 1852, Names: []string{"nautical mile"}},
	{Key: "nm_uk", Factor: 1853.184, Names: []string{"nautical mile (uk)"}},
	{Key: "survey_ft", Factor: 0.304800609601, Names: []string{"us survey foot", "u.s. foot"}},
	{Key: "british_ft", Factor: 0.304799471539, Names: []string{"british foot", "british foot (sears 1922)"}},
	{Key: "british_yd", Factor: 0.914398414616, Names: []string{"british yard", "british yard (sears 1922)"}},
	{Key: "british_chain_benoit", Factor: 20.1167824944, Names: []string{"british chain (benoit 1895 b)"}},
	{Key: "british_chain_sears", Factor: 20.1167651216, Names: []string{"british chain (sears 1922)"}},
	{Key: "british_chain_sears_truncated", Factor: 20.116756, Names: []string{"british chain (sears 1922 truncated)"}},
	{Key: "chain", Factor: 20.1168},
	{Key: "chain_benoit", Factor: 20.116782, Names: []string{"chain (benoit)"}},
	{Key: "chain_sears", Factor: 20.1167645, Names: []string{"chain (sears)"}},
	{Key: "clarke_ft", Factor: 0.3047972654, Names: []string{"clarke's foot"}},
	{Key: "clarke_link", Factor: 0.201166195164, Names: []string{"clarke's link"}},
	{Key: "fathom", Factor: 1.8288},
	{Key: "furlong", Factor: 201.168, Names: []string{"furrow long"}},
	{Key: "german_m", Factor: 1.0000135965, Names: []string{"german legal metre"}},
	{Key: "gold_coast_ft", Factor: 0.304799710181508, Names: []string{"gold coast foot"}},
	{Key: "indian_yd", Factor: 0.914398530744, Names: []string{"indian yard", "yard (indian)"}},
	{Key: "link", Factor: 0.201168},
	{Key: "link_benoit", Factor: 0.20116782, Names: []string{"link (benoit)"}},
	{Key: "link_sears", Factor: 0.20116765, Names: []string{"link (sears)"}},
	{Key: "rod", Factor: 5.0292},
	{Key: "sears_yd", Factor: 0.91439841, Names: []string{"yard (sears)"}},
}

// areaEntries derives the area unit table from the distance table:
// each distance key reprefixed with "sq_" and its factor squared,
// which keeps the Distance×Distance→Area identity exact. The hectare
// is appended separately; it has no distance counterpart.
func areaEntries(dist []UnitEntry) []UnitEntry {
	entries := make([]UnitEntry, 0, len(dist)+1)
	for _, e := range dist {
		names := make([]string, len(e.Names))
		for i, n := range e.Names {
			names[i] = "square " + n
		}
		entries = append(entries, UnitEntry{
			Key:    "sq_" + e.Key,
			Factor: e.Factor * e.Factor,
			Names:  names,
		})
	}
	return append(entries, UnitEntry{Key: "ha", Factor: 10000, Names: []string{"hectare"}})
}

// DistanceUnits is the unit registry for linear distance. The base
// unit is the meter.
var DistanceUnits = newRegistry(KindDistance, "m", distanceEntries)

// AreaUnits is the unit registry for area. The base unit is the
// square meter.
var AreaUnits = newRegistry(KindArea, "sq_m", areaEntries(distanceEntries))
