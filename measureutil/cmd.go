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

// Package measureutil provides the command-line interface for the
// measure unit-conversion library.
package measureutil

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ctessum/measure"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the measure
	// commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "precision",
			usage: `
              precision specifies the number of decimal places in converted
              output. The default of -1 uses the fewest digits needed to
              represent the value exactly.`,
			shorthand:  "p",
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	Root.AddCommand(convertCmd, unitsCmd, versionCmd)

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("measure: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "measure",
	Short: "Convert values between distance and area units.",
	Long: `measure converts values between the linear distance and area units
registered in the measure library. Units may be given as canonical keys
("km", "sq_mi"), abbreviations, or full names ("Kilometre", "square mile");
matching is case-insensitive.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag) or by using command-line
arguments.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of measure.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("measure v%s\n", measure.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert value from-unit to-unit",
	Short: "Convert a value between two units of the same kind.",
	Long: `convert expresses a value given in one unit in another unit of the
same quantity kind. For example:

  measure convert 5 mi km
  measure convert 2.5 "square mile" ha`,
	Args:              cobra.ExactArgs(3),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := cast.ToFloat64E(args[0])
		if err != nil {
			return fmt.Errorf("measure: parsing value %q: %v", args[0], err)
		}
		out, err := ConvertValue(v, args[1], args[2])
		if err != nil {
			return err
		}
		cmd.Println(strconv.FormatFloat(out, 'f', Cfg.GetInt("precision"), 64))
		return nil
	},
}

// ConvertValue converts value from one named unit to another. The
// units may belong to either quantity kind, but both must belong to
// the same one.
func ConvertValue(value float64, from, to string) (float64, error) {
	for _, kind := range []measure.Kind{measure.KindDistance, measure.KindArea} {
		key, err := measure.UnitAttname(kind, from)
		if err != nil {
			continue
		}
		q, err := measure.New(kind, value, key)
		if err != nil {
			return 0, err
		}
		return measure.Convert(q, to)
	}
	return 0, fmt.Errorf("measure: unknown unit %q", from)
}

var unitsCmd = &cobra.Command{
	Use:   "units [distance|area]",
	Short: "List the registered units.",
	Long: `units prints the canonical key, conversion factor to the base unit,
and accepted full names of every registered unit, in registry order.`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		registries := []*measure.Registry{measure.DistanceUnits, measure.AreaUnits}
		if len(args) == 1 {
			switch strings.ToLower(args[0]) {
			case "distance":
				registries = registries[:1]
			case "area":
				registries = registries[1:]
			default:
				return fmt.Errorf("measure: unknown quantity kind %q", args[0])
			}
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
		for _, r := range registries {
			for _, e := range r.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%g\t%s\n",
					r.Kind(), e.Key, e.Factor, strings.Join(e.Names, ", "))
			}
		}
		return w.Flush()
	},
}
