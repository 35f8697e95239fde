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

import "math"

/* -------------------------------------------------------------------------- */

// shannonEntropy computes the base-2 Shannon entropy of the base
// frequencies observed across seqs (all characters of all strings
// pooled together), in [0, 2] for the four-letter DNA alphabet.
func shannonEntropy(seqs ...string) float64 {
  counts := make(map[byte]int)
  total := 0
  for _, s := range seqs {
    for i := 0; i < len(s); i++ {
      counts[s[i]]++
      total++
    }
  }
  if total == 0 {
    return 0
  }
  h := 0.0
  for _, c := range counts {
    if c == 0 {
      continue
    }
    p := float64(c) / float64(total)
    h -= p * math.Log2(p)
  }
  return h
}

// distinctBases returns the number of distinct characters in s.
func distinctBases(s string) int {
  seen := make(map[byte]bool)
  for i := 0; i < len(s); i++ {
    seen[s[i]] = true
  }
  return len(seen)
}

// longestHomopolymerRun returns the length of the longest run of a
// single repeated character in s.
func longestHomopolymerRun(s string) int {
  if len(s) == 0 {
    return 0
  }
  best := 1
  cur := 1
  for i := 1; i < len(s); i++ {
    if s[i] == s[i-1] {
      cur++
    } else {
      cur = 1
    }
    if cur > best {
      best = cur
    }
  }
  return best
}
