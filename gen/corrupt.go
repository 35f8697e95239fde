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

package gen

/* -------------------------------------------------------------------------- */

import "math/rand"

/* -------------------------------------------------------------------------- */

// Spectrum splits a DNA string dna into its overlapping k-mer
// multiset, mirroring spectrum_generator.py's complete-spectrum step
// before any error injection.
func Spectrum(dna string, k int) []string {
  if k < 1 || k > len(dna) {
    return nil
  }
  r := make([]string, 0, len(dna)-k+1)
  for i := 0; i+k <= len(dna); i++ {
    r = append(r, dna[i:i+k])
  }
  return r
}

// CorruptSpectrum injects negative errors (dropped k-mers) and positive
// errors (random extraneous k-mers) into spectrum, following
// spectrum_generator.py's generate(): num_to_remove and num_to_add are
// each int(len(spectrum) * rate), removal is by repeated random index
// pop, addition appends freshly-generated random k-mers of the same
// length k. Neither the CORE nor any of its callers needs to distinguish
// which entries were corrupted afterwards.
func CorruptSpectrum(spectrum []string, k int, negRate, posRate float64, rng *rand.Rand) []string {
  s := append([]string(nil), spectrum...)

  if negRate > 0 {
    numToRemove := int(float64(len(s)) * negRate)
    for i := 0; i < numToRemove && len(s) > 0; i++ {
      idx := rng.Intn(len(s))
      s[idx] = s[len(s)-1]
      s = s[:len(s)-1]
    }
  }
  if posRate > 0 {
    numToAdd := int(float64(len(spectrum)) * posRate)
    for i := 0; i < numToAdd; i++ {
      s = append(s, RandomDNA(k, rng))
    }
  }
  return s
}
