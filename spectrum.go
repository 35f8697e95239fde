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

/* -------------------------------------------------------------------------- */

// Spectrum is an immutable multiset of KMers (duplicates permitted),
// carrying the parameters of the reconstruction it was hybridized for.
// Nothing in this package mutates a Spectrum once NewSpectrum returns.
type Spectrum struct {
  Kmers         []KMer
  N             int
  K             int
  ExpectedCount int
}

/* -------------------------------------------------------------------------- */

// NewSpectrum validates kmers against (n, k) and returns the Spectrum,
// or a validation error (§7): n < k, k < 2, k > 64, an empty spectrum,
// or any k-mer violating the {A,C,G,T} alphabet.
func NewSpectrum(kmers []KMer, n, k int) (Spectrum, error) {
  if k < 2 {
    return Spectrum{}, newValidationError("k must be >= 2, got %d", k)
  }
  if k > 64 {
    return Spectrum{}, newValidationError("k must be <= 64, got %d", k)
  }
  if n < k {
    return Spectrum{}, newValidationError("n (%d) must be >= k (%d)", n, k)
  }
  if len(kmers) == 0 {
    return Spectrum{}, newValidationError("spectrum must not be empty")
  }
  for i, kmer := range kmers {
    if err := kmer.Validate(k); err != nil {
      return Spectrum{}, newValidationError("kmer at index %d: %s", i, err.Error())
    }
  }
  cp := make([]KMer, len(kmers))
  copy(cp, kmers)
  return Spectrum{
    Kmers:         cp,
    N:             n,
    K:             k,
    ExpectedCount: n - k + 1,
  }, nil
}

/* -------------------------------------------------------------------------- */

// Size is the number of k-mers in the spectrum, counting duplicates.
func (obj Spectrum) Size() int {
  return len(obj.Kmers)
}

// Counts returns the multiplicity of every distinct k-mer in the
// spectrum.
func (obj Spectrum) Counts() map[KMer]int {
  r := make(map[KMer]int)
  for _, kmer := range obj.Kmers {
    r[kmer]++
  }
  return r
}

// Unique returns the distinct k-mers of the spectrum, in no particular
// order.
func (obj Spectrum) Unique() []KMer {
  seen := make(map[KMer]bool)
  r := make([]KMer, 0, len(obj.Kmers))
  for _, kmer := range obj.Kmers {
    if !seen[kmer] {
      seen[kmer] = true
      r = append(r, kmer)
    }
  }
  return r
}
