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

// Package gen holds the ground-truth generators the core spectrum
// reconstruction never imports: random DNA strings and spectrum
// corruption (§6 external collaborators, "only their interfaces named").
package gen

/* -------------------------------------------------------------------------- */

import "math/rand"

/* -------------------------------------------------------------------------- */

var bases = [4]byte{'A', 'C', 'G', 'T'}

// RandomDNA returns a uniformly random string of length n over
// {A,C,G,T}, used by tests and CLI tools as the evaluation
// ground-truth. The core library never calls this.
func RandomDNA(n int, rng *rand.Rand) string {
  b := make([]byte, n)
  for i := range b {
    b[i] = bases[rng.Intn(len(bases))]
  }
  return string(b)
}
