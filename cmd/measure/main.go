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

// Command measure is a command-line interface for converting values
// between distance and area units.
package main

import (
	"os"

	"github.com/ctessum/measure/measureutil"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableSorting: true,
	})
}

func main() {
	if err := measureutil.Root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
