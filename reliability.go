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

// ReliableSet is the subset of unique k-mers flagged reliable by C3.
// Membership is final once BuildReliableSet returns.
type ReliableSet struct {
  Kmers []KMer
  index map[KMer]bool
}

// Contains reports whether kmer is a member of the reliable set.
func (obj ReliableSet) Contains(kmer KMer) bool {
  return obj.index[kmer]
}

// Len is the number of reliable k-mers.
func (obj ReliableSet) Len() int {
  return len(obj.Kmers)
}

func newReliableSet(kmers []KMer) ReliableSet {
  idx := make(map[KMer]bool, len(kmers))
  for _, kmer := range kmers {
    idx[kmer] = true
  }
  return ReliableSet{Kmers: kmers, index: idx}
}

/* -------------------------------------------------------------------------- */

// BuildReliableSet selects the trusted subset of spectrum's unique
// k-mers, per the mode-specific thresholds of §4.2:
//
//   - internal entropy: distinct bases >= 3, OR Shannon entropy >= the
//     mode's MinEntropy;
//   - no homopolymer run longer than ceil(k/2);
//   - for Aggressive/Rescue, additionally requires at least one other
//     k-mer in the spectrum overlapping it by k-1 at either end.
//
// If fewer than two k-mers pass the filter, R falls back to the full
// unique spectrum. Neither this function nor the orchestrator
// (reconstruct.go) downgrades the mode or re-runs the filter with
// relaxed thresholds first.
func BuildReliableSet(spectrum Spectrum, mode Mode) ReliableSet {
  params := ParamsFor(mode, 0)
  unique := spectrum.Unique()
  maxHomopolymer := (spectrum.K + 1) / 2

  neighbors := kMinusOneNeighborIndex(unique)

  reliable := make([]KMer, 0, len(unique))
  for _, kmer := range unique {
    if !passesEntropyAndRun(kmer, params.MinEntropy, maxHomopolymer) {
      continue
    }
    if params.RequireLocalOverlap && !neighbors[kmer] {
      continue
    }
    reliable = append(reliable, kmer)
  }

  if len(reliable) < 2 {
    // Fallback: R equals the full unique spectrum (§4.2).
    return newReliableSet(unique)
  }
  return newReliableSet(reliable)
}

func passesEntropyAndRun(kmer KMer, minEntropy float64, maxHomopolymer int) bool {
  s := string(kmer)
  if longestHomopolymerRun(s) > maxHomopolymer {
    return false
  }
  if distinctBases(s) >= 3 {
    return true
  }
  return shannonEntropy(s) >= minEntropy
}

// kMinusOneNeighborIndex flags every k-mer that shares a (k-1)-overlap
// with some other k-mer in kmers, at either its prefix or its suffix.
func kMinusOneNeighborIndex(kmers []KMer) map[KMer]bool {
  if len(kmers) == 0 {
    return nil
  }
  k := len(kmers[0])
  byPrefix := make(map[string][]KMer)
  bySuffix := make(map[string][]KMer)
  for _, kmer := range kmers {
    byPrefix[kmer.Prefix(k-1)] = append(byPrefix[kmer.Prefix(k-1)], kmer)
    bySuffix[kmer.Suffix(k-1)] = append(bySuffix[kmer.Suffix(k-1)], kmer)
  }
  result := make(map[KMer]bool, len(kmers))
  for _, kmer := range kmers {
    // a k-mer's suffix(k-1) feeding some other k-mer's prefix(k-1)
    for _, other := range byPrefix[kmer.Suffix(k-1)] {
      if other != kmer {
        result[kmer] = true
        break
      }
    }
    if result[kmer] {
      continue
    }
    // or some other k-mer's suffix(k-1) feeding this k-mer's prefix(k-1)
    for _, other := range bySuffix[kmer.Prefix(k-1)] {
      if other != kmer {
        result[kmer] = true
        break
      }
    }
  }
  return result
}
