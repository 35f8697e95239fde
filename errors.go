/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package sbh

/* -------------------------------------------------------------------------- */

import (
  "errors"
  "fmt"
)

/* -------------------------------------------------------------------------- */

// ErrValidation wraps all input-validation failures (§7 of the design
// document): n < k, k out of range, alphabet violations, empty spectrum.
// It is the only error Reconstruct ever returns; everything else that
// happens on noisy input becomes a flag on Result.
var ErrValidation = errors.New("sbh: validation error")

/* -------------------------------------------------------------------------- */

// validationError wraps ErrValidation with a specific message while
// still satisfying errors.Is(err, ErrValidation).
type validationError struct {
  msg string
}

func (e *validationError) Error() string {
  return "sbh: " + e.msg
}

func (e *validationError) Unwrap() error {
  return ErrValidation
}

func newValidationError(format string, args ...interface{}) error {
  return &validationError{msg: fmt.Sprintf(format, args...)}
}
