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
  "testing"
)

func newTestExtender(seed string, kmers []KMer, n, k int) *extender {
  r := newReliableSet(kmers)
  g := BuildOverlapGraph(r, k, 1)
  spectrum, err := NewSpectrum(kmers, n, k)
  if err != nil {
    panic(err)
  }
  params := ParamsFor(Aggressive, 0)
  return newExtender(seed, g, r, spectrum, params, n)
}

func TestStandardStepExactExtension(test *testing.T) {
  ex := newTestExtender("ACGT", kmersOf("ACGT", "CGTA"), 8, 4)
  res := standardStep(ex, ex.tail())
  if !res.Ok {
    test.Fatal("expected standardStep to find CGTA via the tail's full-base extension")
  }
  if res.Appended != "A" {
    test.Errorf("expected to append A, got %s", res.Appended)
  }
}

func TestStandardStepFailsWithNoFullBaseExtension(test *testing.T) {
  ex := newTestExtender("AAAA", kmersOf("AAGT"), 6, 4)
  res := standardStep(ex, ex.tail())
  if res.Ok {
    test.Error("expected standardStep to fail: no AAA+base k-mer is reliable")
  }
}

func TestAggressiveStepJumpsOnPartialOverlap(test *testing.T) {
  ex := newTestExtender("AAAA", kmersOf("AAGT"), 6, 4)
  res := aggressiveStep(ex, ex.tail(), ex.params.CandidateSize, 2)
  if !res.Ok {
    test.Fatal("expected aggressiveStep to find AAGT via a 2-overlap jump")
  }
  if res.Appended != "GT" {
    test.Errorf("expected to append GT, got %s", res.Appended)
  }
}

func TestConservativeStepPrefersLowestHammingDistance(test *testing.T) {
  // Both AAAT and AAGT overlap tail "AAA" by 2, but AAAT matches it
  // exactly over the compared prefix while AAGT differs by one base,
  // so AAAT must win.
  ex := newTestExtender("AAAA", kmersOf("AAAT", "AAGT"), 8, 4)
  res := conservativeStep(ex, ex.tail(), 1)
  if !res.Ok {
    test.Fatal("expected conservativeStep to find a candidate")
  }
  if res.Appended != "AT" {
    test.Errorf("expected to append AT (from AAAT), got %s", res.Appended)
  }
}

func TestDesperateStepPadsAndAppendsWholeCandidate(test *testing.T) {
  ex := newTestExtender("AAAA", kmersOf("GGGG"), 9, 4)
  rng := rand.New(rand.NewSource(1))
  res := desperateStep(ex, ex.tail(), rng)
  if !res.Ok || !res.Desperation {
    test.Fatal("expected desperateStep to take a desperation step")
  }
  if res.Appended != "CGGGG" {
    test.Errorf("expected pad C followed by the whole candidate GGGG, got %s", res.Appended)
  }
}

func TestDesperateStepFailsWhenNothingUnusedRemains(test *testing.T) {
  ex := newTestExtender("AAAA", kmersOf("AAAA"), 8, 4)
  rng := rand.New(rand.NewSource(1))
  res := desperateStep(ex, ex.tail(), rng)
  if res.Ok {
    test.Error("expected desperateStep to fail: the only reliable k-mer is already used")
  }
}
