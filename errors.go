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
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a quantity is divided by a zero
// scalar or by a zero-magnitude quantity.
var ErrDivisionByZero = errors.New("measure: division by zero")

// An UnknownUnitError is returned when a unit name or canonical key
// is not registered for the relevant quantity kind.
type UnknownUnitError struct {
	Kind Kind   // the kind whose registry was consulted
	Name string // the name that failed to resolve
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("measure: unknown %s unit %q", e.Kind, e.Name)
}

// An IncompatibleQuantityError is returned when an operation mixes
// quantity kinds, or requests a product or quotient that no kind
// exists for.
type IncompatibleQuantityError struct {
	Op          string // the operation that was attempted
	Left, Right string // descriptions of the operands' kinds or dimensions
}

func (e *IncompatibleQuantityError) Error() string {
	return fmt.Sprintf("measure: incompatible quantities in %s: %s and %s",
		e.Op, e.Left, e.Right)
}

// An InvalidConstructionError is returned when a quantity is
// constructed with a missing unit or a non-finite magnitude.
type InvalidConstructionError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidConstructionError) Error() string {
	return fmt.Sprintf("measure: invalid %s construction: %s", e.Kind, e.Reason)
}
