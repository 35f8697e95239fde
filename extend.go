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
  "math/rand"
  "time"
)

/* -------------------------------------------------------------------------- */

// level is the adaptive extender's escalation ladder position (§4.6).
type level int

const (
  levelStandard level = iota
  levelAggressive
  levelConservative
  levelDesperate
)

/* -------------------------------------------------------------------------- */

// extender holds all read-only context the four strategies need, plus
// the mutable Reconstruction state (S, the derived used-set, and the
// dead-set) while C7 walks towards length n.
type extender struct {
  graph    OverlapGraph
  reliable ReliableSet
  counts   map[KMer]int
  k        int
  n        int
  params   ModeParams

  seq     []byte
  deadSet map[string]bool
}

func newExtender(seed string, g OverlapGraph, r ReliableSet, spectrum Spectrum, params ModeParams, n int) *extender {
  return &extender{
    graph:    g,
    reliable: r,
    counts:   spectrum.Counts(),
    k:        spectrum.K,
    n:        n,
    params:   params,
    seq:      []byte(seed),
    deadSet:  make(map[string]bool),
  }
}

// isUsed reports whether kmer already occurs as a window of the current
// reconstruction: U is derived directly from S (§3 data model), never
// tracked separately, so backtracking never needs to "undo" membership
// bookkeeping beyond truncating S itself.
func (ex *extender) isUsed(kmer KMer) bool {
  s := string(ex.seq)
  k := len(kmer)
  if len(s) < k {
    return false
  }
  needle := string(kmer)
  for i := 0; i+k <= len(s); i++ {
    if s[i:i+k] == needle {
      return true
    }
  }
  return false
}

func (ex *extender) unusedReliable() []KMer {
  r := make([]KMer, 0, ex.reliable.Len())
  for _, kmer := range ex.reliable.Kmers {
    if !ex.isUsed(kmer) {
      r = append(r, kmer)
    }
  }
  return r
}

// topUnusedByOutDegree returns up to size unused reliable k-mers,
// ranked by out-degree descending then lexicographically.
func (ex *extender) topUnusedByOutDegree(size int) []KMer {
  unused := ex.unusedReliable()
  sortByOutDegreeThenLex(unused, ex.graph)
  if len(unused) > size {
    unused = unused[:size]
  }
  return unused
}

func sortByOutDegreeThenLex(kmers []KMer, g OverlapGraph) {
  // insertion sort over every k-mer passed in (all unused reliable
  // k-mers, before truncation to candidate_size)
  for i := 1; i < len(kmers); i++ {
    for j := i; j > 0; j-- {
      a, b := kmers[j-1], kmers[j]
      if g.OutDegree(a) > g.OutDegree(b) || (g.OutDegree(a) == g.OutDegree(b) && a <= b) {
        break
      }
      kmers[j-1], kmers[j] = kmers[j], kmers[j-1]
    }
  }
}

func deadKey(tail string, base byte) string {
  return tail + "|" + string(base)
}

func (ex *extender) tail() string {
  s := string(ex.seq)
  w := ex.k - 1
  if len(s) < w {
    return s
  }
  return s[len(s)-w:]
}

/* -------------------------------------------------------------------------- */

// extendOutcome is the C7 result bundle folded into the orchestrator's
// Result (§4.6/§6).
type extendOutcome struct {
  Sequence    string
  Iterations  int
  Backtracks  int
  Incomplete  bool
  Desperation int
}

// Extend walks seed towards length n using the four graded strategies
// of §4.6, subject to the iteration/backtrack/wall-clock/desperation
// budgets. Determinism (§8 invariant 3) follows from using only rng
// for randomness (Desperate strategy) -- no other source of
// nondeterminism is consulted.
func Extend(seed string, g OverlapGraph, r ReliableSet, spectrum Spectrum, params ModeParams, n int, maxIterations, maxBacktracks int, wallTime time.Duration, maxDesperation int, rng *rand.Rand) extendOutcome {
  ex := newExtender(seed, g, r, spectrum, params, n)
  deadline := time.Now().Add(wallTime)

  lvl := levelStandard
  standardFails, aggressiveFails, conservativeFails := 0, 0, 0
  iterations, backtracks, desperation := 0, 0, 0
  incomplete := false

  // §4.6 gives the Aggressive jump a fixed search range and separately
  // gives each mode a tuned min_overlap_for_jump; the stricter (larger)
  // of the two wins as the actual floor. The Conservative jump's own
  // floor is a fixed k-2, tightened the same way.
  aggressiveFloor := iMax(1, ex.k+clampOffset(params.MinOverlapForJump, ex.k))
  conservativeFloor := iMax(1, iMax(ex.k-2, aggressiveFloor))

loop:
  for len(ex.seq) < n {
    if iterations >= maxIterations {
      incomplete = true
      break
    }
    if backtracks >= maxBacktracks {
      incomplete = true
      break
    }
    if time.Now().After(deadline) {
      incomplete = true
      break
    }
    iterations++

    tail := ex.tail()
    var res stepResult
    attempted := lvl

    switch lvl {
    case levelStandard:
      res = standardStep(ex, tail)
      if res.Ok {
        standardFails = 0
      } else {
        standardFails++
        if standardFails >= 3 {
          lvl = levelAggressive
          standardFails = 0
        }
      }
    case levelAggressive:
      res = aggressiveStep(ex, tail, ex.params.CandidateSize, aggressiveFloor)
      if res.Ok {
        aggressiveFails = 0
        lvl = levelStandard
      } else {
        aggressiveFails++
        if aggressiveFails >= 2 {
          lvl = levelConservative
          aggressiveFails = 0
        }
      }
    case levelConservative:
      res = conservativeStep(ex, tail, conservativeFloor)
      if res.Ok {
        conservativeFails = 0
        lvl = levelStandard
      } else {
        conservativeFails++
        if conservativeFails >= 1 {
          lvl = levelDesperate
          conservativeFails = 0
        }
      }
    case levelDesperate:
      res = desperateStep(ex, tail, rng)
      if res.Desperation {
        desperation++
      }
      if res.Ok {
        lvl = levelStandard
      }
    }

    if res.Ok {
      ex.appendTruncated(res.Appended, n)
      if desperation > maxDesperation {
        incomplete = true
        break loop
      }
      continue
    }

    // Only back off once Desperate itself has failed: that is the
    // bottom of the §4.6 escalation ladder, with nothing left to try
    // for this tail. A failure at any earlier rung has already moved
    // lvl to the next rung above (or incremented its fail counter) for
    // the next iteration -- backtracking here would discard that
    // escalation before it ever runs.
    if attempted != levelDesperate {
      continue
    }

    // every strategy available at this level failed: back off one base
    // and blacklist the (tail, base) pair that led here, per §4.6/§4.7.
    if len(ex.seq) <= ex.k {
      // nothing left to pop below the seed contig; give up gracefully
      incomplete = true
      break
    }
    poppedBase := ex.seq[len(ex.seq)-1]
    ex.seq = ex.seq[:len(ex.seq)-1]
    backtracks++
    ex.deadSet[deadKey(ex.tail(), poppedBase)] = true
    lvl = levelStandard
    standardFails, aggressiveFails, conservativeFails = 0, 0, 0
  }

  if len(ex.seq) < n {
    incomplete = true
    ex.seq = append(ex.seq, padTo(n-len(ex.seq))...)
  } else if len(ex.seq) > n {
    ex.seq = ex.seq[:n]
  }

  return extendOutcome{
    Sequence:    string(ex.seq),
    Iterations:  iterations,
    Backtracks:  backtracks,
    Incomplete:  incomplete,
    Desperation: desperation,
  }
}

// appendTruncated appends s to the reconstruction, never growing it
// past n (§3 data model invariant: |S| never exceeds n).
func (ex *extender) appendTruncated(s string, n int) {
  room := n - len(ex.seq)
  if room <= 0 {
    return
  }
  if len(s) > room {
    s = s[:room]
  }
  ex.seq = append(ex.seq, s...)
}

// clampOffset returns a ModeParams.MinOverlapForJump offset (e.g. -2)
// unchanged, or raised so that the corresponding width k+offset never
// goes below 1.
func clampOffset(offset, k int) int {
  v := offset
  if k+v < 1 {
    return 1 - k
  }
  return v
}

// padTo returns n 'A' bytes, the deterministic right-pad of §4.6/§7.
func padTo(n int) []byte {
  r := make([]byte, n)
  for i := range r {
    r[i] = 'A'
  }
  return r
}
