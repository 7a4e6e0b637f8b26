// Copyright 2016 The Govle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// String prints one coefficient
func prmString(p *dbf.P) string {
	return io.Sf("{\"n\":%q, \"v\":%v, \"u\":%q}", p.N, p.V, p.U)
}

// String prints a list of names
func namesString(names []string) (l string) {
	l = "["
	for i, name := range names {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%q", name)
	}
	return l + "]"
}

// String prints one component in the .prop format
func (o *Component) String() string {
	l := io.Sf("    {\n      \"name\" : %q", o.Name)
	if len(o.Phases) > 0 {
		l += io.Sf(",\n      \"phases\" : %s", namesString(o.Phases))
	}
	for _, ref := range []struct{ key, val string }{
		{"densliq", o.DensLiq},
		{"enthliq", o.EnthLiq},
		{"enthig", o.EnthIg},
		{"psat", o.Psat},
		{"equilform", o.EquilForm},
	} {
		if ref.val != "" {
			l += io.Sf(",\n      %q : %q", ref.key, ref.val)
		}
	}
	l += ",\n      \"prms\" : [\n"
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += "        " + prmString(p)
	}
	return l + "\n      ]\n    }"
}

// String prints one phase in the .prop format
func (o *Phase) String() string {
	return io.Sf("    {\"name\":%q, \"kind\":%q, \"model\":%q}", o.Name, o.Kind, o.Model)
}

// String prints one bound in the .prop format
func (o *Bound) String() string {
	return io.Sf("    {\"var\":%q, \"lo\":%v, \"nom\":%v, \"up\":%v, \"u\":%q}", o.Var, o.Lo, o.Nom, o.Up, o.U)
}

// String prints the whole database in the .prop format
func (o *PropDb) String() string {
	l := "{\n  \"components\" : [\n"
	for i, c := range o.Components {
		if i > 0 {
			l += ",\n"
		}
		l += c.String()
	}
	l += "\n  ],\n  \"phases\" : [\n"
	for i, ph := range o.Phases {
		if i > 0 {
			l += ",\n"
		}
		l += ph.String()
	}
	l += io.Sf("\n  ],\n  \"units\" : {\"time\":%q, \"length\":%q, \"mass\":%q, \"amount\":%q, \"temperature\":%q},\n",
		o.Units.Time, o.Units.Length, o.Units.Mass, o.Units.Amount, o.Units.Temperature)
	l += io.Sf("  \"statedef\" : %q,\n  \"bounds\" : [\n", o.StateDef)
	for i, bnd := range o.Bounds {
		if i > 0 {
			l += ",\n"
		}
		l += bnd.String()
	}
	l += io.Sf("\n  ],\n  \"tref\" : %s,\n  \"pref\" : %s,\n", prmString(o.Tref), prmString(o.Pref))
	l += "  \"equilibria\" : ["
	for i, eq := range o.Equilibria {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"pair\":%s, \"state\":%q}", namesString(eq.Pair), eq.State)
	}
	l += io.Sf("],\n  \"bubdew\" : %q\n}\n", o.BubDew)
	return l
}
