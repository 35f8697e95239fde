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

// MergeContigs greedily stitches contigs together by their longest
// suffix/prefix overlap, per §4.5: at every round, compute o(A,B) for
// every ordered pair of distinct surviving contigs, merge the pair
// maximizing o (ties broken lexicographically on A then B), and repeat
// until no pair overlaps by >= k-1. The surviving strings are the
// backbones.
func MergeContigs(contigs []Contig, k int) []string {
  backbones := make([]string, len(contigs))
  for i, c := range contigs {
    backbones[i] = c.Sequence
  }

  for {
    bestI, bestJ, bestO := -1, -1, 0
    for i := 0; i < len(backbones); i++ {
      for j := 0; j < len(backbones); j++ {
        if i == j {
          continue
        }
        o := suffixPrefixOverlap(backbones[i], backbones[j], k-1)
        if o > bestO || (o == bestO && o > 0 && betterTieBreak(backbones, i, j, bestI, bestJ)) {
          bestI, bestJ, bestO = i, j, o
        }
      }
    }
    if bestO < k-1 {
      break
    }
    merged := backbones[bestI] + backbones[bestJ][bestO:]
    next := make([]string, 0, len(backbones)-1)
    for idx, b := range backbones {
      if idx != bestI && idx != bestJ {
        next = append(next, b)
      }
    }
    next = append(next, merged)
    backbones = next
  }
  return backbones
}

// suffixPrefixOverlap returns the longest o in [floor, min(len(a),len(b))-1]
// such that suffix(a,o) == prefix(b,o).
func suffixPrefixOverlap(a, b string, floor int) int {
  max := len(a)
  if len(b) < max {
    max = len(b)
  }
  if max > 0 {
    max--
  }
  for o := max; o >= floor; o-- {
    if o == 0 {
      return 0
    }
    if a[len(a)-o:] == b[:o] {
      return o
    }
  }
  return 0
}

// betterTieBreak reports whether the (i,j) pair is lexicographically
// preferred over the current best (bi,bj), comparing A first then B.
func betterTieBreak(backbones []string, i, j, bi, bj int) bool {
  if bi < 0 {
    return true
  }
  if backbones[i] != backbones[bi] {
    return backbones[i] < backbones[bi]
  }
  return backbones[j] < backbones[bj]
}
