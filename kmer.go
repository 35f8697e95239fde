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

import "fmt"

/* -------------------------------------------------------------------------- */

// KMer is a flat, immutable string of length k over the alphabet
// {A,C,G,T}. Equality is plain string equality; a KMer never carries
// wildcards or ambiguity codes.
type KMer string

/* -------------------------------------------------------------------------- */

// ValidateBase reports whether b is a member of {A,C,G,T}.
func ValidateBase(b byte) bool {
  switch b {
  case 'A', 'C', 'G', 'T':
    return true
  default:
    return false
  }
}

// Validate checks that obj has length k and contains only characters
// from {A,C,G,T}.
func (obj KMer) Validate(k int) error {
  if len(obj) != k {
    return fmt.Errorf("KMer.Validate(): `%s' has length %d, expected %d", obj, len(obj), k)
  }
  for i := 0; i < len(obj); i++ {
    if !ValidateBase(obj[i]) {
      return fmt.Errorf("KMer.Validate(): `%s' contains `%c' at position %d, not in {A,C,G,T}", obj, obj[i], i)
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Prefix returns the first w characters of obj.
func (obj KMer) Prefix(w int) string {
  return string(obj)[0:w]
}

// Suffix returns the last w characters of obj.
func (obj KMer) Suffix(w int) string {
  s := string(obj)
  return s[len(s)-w:]
}

/* -------------------------------------------------------------------------- */

// Overlap returns the length of the longest suffix of a that equals a
// prefix of b, restricted to [0, min(len(a), len(b))-1]: two k-mers of
// equal length never overlap over their full length, since that would
// make them identical rather than overlapping. Runs in O(k).
func Overlap(a, b KMer) int {
  max := len(a)
  if len(b) < max {
    max = len(b)
  }
  if max > 0 {
    max--
  }
  for w := max; w > 0; w-- {
    if a.Suffix(w) == b.Prefix(w) {
      return w
    }
  }
  return 0
}
