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

import "testing"

/* -------------------------------------------------------------------------- */

func TestKmerValidate1(test *testing.T) {
  a := KMer("ACGT")
  if err := a.Validate(4); err != nil {
    test.Error(err)
  }
}

func TestKmerValidate2(test *testing.T) {
  a := KMer("ACGX")
  if err := a.Validate(4); err == nil {
    test.Error("expected validation error for non-alphabet character")
  }
}

func TestKmerValidate3(test *testing.T) {
  a := KMer("ACG")
  if err := a.Validate(4); err == nil {
    test.Error("expected validation error for wrong length")
  }
}

func TestOverlap1(test *testing.T) {
  a := KMer("ACGTACG")
  b := KMer("CGTACGT")
  if w := Overlap(a, b); w != 6 {
    test.Errorf("expected overlap 6, got %d", w)
  }
}

func TestOverlap2(test *testing.T) {
  a := KMer("AAAA")
  b := KMer("TTTT")
  if w := Overlap(a, b); w != 0 {
    test.Errorf("expected overlap 0, got %d", w)
  }
}

func TestOverlap3(test *testing.T) {
  a := KMer("ACGT")
  b := KMer("ACGT")
  if w := Overlap(a, b); w != 0 {
    test.Errorf("expected overlap 0 (identical k-mers never overlap over their full length, and ACGT has no shorter self-overlap), got %d", w)
  }
}
