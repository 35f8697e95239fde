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
  "sort"
  "time"
)

/* -------------------------------------------------------------------------- */

// Options are the tunables exposed by the core (§6). Every field is
// optional; the zero value means "use the mode-derived default".
type Options struct {
  CandidateSize  int
  ErrorThreshold float64
  MaxIterations  int
  MaxBacktracks  int
  WallTimeMs     int
  Seed           int64
  ForceMode      *Mode
}

// defaulted fills in every zero-valued field of o against n, returning
// a fully-resolved copy.
func (o Options) defaulted(n int) Options {
  r := o
  if r.ErrorThreshold == 0 {
    r.ErrorThreshold = 0.15
  }
  if r.MaxIterations == 0 {
    r.MaxIterations = 4 * n
  }
  if r.MaxBacktracks == 0 {
    r.MaxBacktracks = 10
  }
  if r.WallTimeMs == 0 {
    r.WallTimeMs = 30000
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Result is returned by Reconstruct (§6). Sequence always has length n,
// even when Incomplete.
type Result struct {
  Sequence   string
  Mode       Mode
  Iterations int
  Backtracks int
  Incomplete bool
  ElapsedMs  int64

  // Supplemental diagnostics (SPEC_FULL.md §4) -- never influence
  // Sequence, and never change any of the core's invariants.
  BaseBalance          float64
  SpectrumCoverage     float64
  SeedCandidates       []KMer
  HammingNeighborRatio float64
}

/* -------------------------------------------------------------------------- */

// Reconstruct is the core's single entry point (§6):
// spectrum -> profile -> reliable set -> graph -> contigs -> merged
// backbone -> extended sequence of length n. Validation errors are the
// only failure surfaced to the caller; everything else that happens on
// noisy input becomes a flag on Result (§7).
func Reconstruct(kmers []KMer, n, k int, opts Options) (Result, error) {
  start := time.Now()

  spectrum, err := NewSpectrum(kmers, n, k)
  if err != nil {
    return Result{}, err
  }
  opts = opts.defaulted(n)

  profile := NewProfile(spectrum)
  mode := profile.Mode
  if opts.ForceMode != nil {
    mode = *opts.ForceMode
  }

  // BuildReliableSet already falls back to the full unique spectrum
  // when its filtered set is too small (§4.2); Len() < 2 here can only
  // mean the unique spectrum itself has fewer than two k-mers, which no
  // amount of downgrading can fix.
  reliable := BuildReliableSet(spectrum, mode)
  if reliable.Len() < 2 {
    // Degenerate input (§7): fall back to the lexicographically
    // smallest k-mer, repeated and right-padded.
    seed := degenerateSeed(spectrum)
    seq := rightPad(string(seed), n)
    return Result{
      Sequence:             seq,
      Mode:                 mode,
      Incomplete:           true,
      ElapsedMs:            time.Since(start).Milliseconds(),
      HammingNeighborRatio: profile.HammingNeighborRatio,
    }, nil
  }

  params := ParamsFor(mode, opts.CandidateSize)
  graph := BuildOverlapGraph(reliable, k, 1)
  contigs := ExtractContigs(graph, k)
  backbones := MergeContigs(contigs, k)

  seedCandidates := topSeedCandidates(graph, 3)

  longest := longestBackbone(backbones)
  if len(longest) == 0 {
    longest = string(lexicographicallySmallest(reliable.Kmers))
  }

  // A backbone that survived the merger unmerged and traces back to a
  // circular contig (§3: a pure cycle of the (k-1)-overlap subgraph)
  // represents a periodic motif, not a dead end: tile it around the
  // cycle until length n is reached, rather than handing it to C7,
  // whose strategies all refuse to revisit an already-used k-mer and so
  // can never re-walk the same cycle.
  if len(longest) < n {
    if source, ok := circularSource(contigs, longest); ok {
      longest = tileCircularContig(source, k, n)
    }
  }

  var outcome extendOutcome
  if len(longest) >= n {
    outcome = extendOutcome{Sequence: longest[:n], Incomplete: false}
  } else {
    rng := rand.New(rand.NewSource(opts.Seed))
    wallTime := time.Duration(opts.WallTimeMs) * time.Millisecond
    maxDesperation := divIntUp(n, k)
    outcome = Extend(longest, graph, reliable, spectrum, params, n,
      opts.MaxIterations, opts.MaxBacktracks, wallTime, maxDesperation, rng)
  }

  elapsed := time.Since(start).Milliseconds()
  return Result{
    Sequence:             outcome.Sequence,
    Mode:                 mode,
    Iterations:           outcome.Iterations,
    Backtracks:           outcome.Backtracks,
    Incomplete:           outcome.Incomplete,
    ElapsedMs:            elapsed,
    BaseBalance:          BaseBalance(outcome.Sequence),
    SpectrumCoverage:     SpectrumCoverage(outcome.Sequence, spectrum),
    SeedCandidates:       seedCandidates,
    HammingNeighborRatio: profile.HammingNeighborRatio,
  }, nil
}

/* -------------------------------------------------------------------------- */

func degenerateSeed(spectrum Spectrum) KMer {
  unique := spectrum.Unique()
  if len(unique) == 0 {
    return KMer(rightPad("A", spectrum.K)[:spectrum.K])
  }
  return lexicographicallySmallest(unique)
}

func lexicographicallySmallest(kmers []KMer) KMer {
  best := kmers[0]
  for _, kmer := range kmers[1:] {
    if kmer < best {
      best = kmer
    }
  }
  return best
}

// rightPad repeats seed to fill n characters, cutting the last
// repetition short if a whole one would overshoot (§7's deterministic
// right-pad). An empty seed is treated as "A".
func rightPad(seed string, n int) string {
  if seed == "" {
    seed = "A"
  }
  s := ""
  for len(s) < n {
    s += seed
  }
  if len(s) > n {
    s = s[:n]
  }
  return s
}

// circularSource finds the contig that produced backbone, if any,
// provided it is marked Circular (§4.4): the merger (§4.5) only ever
// shortens or concatenates contigs, so an exact string match means
// backbone passed through the merger untouched.
func circularSource(contigs []Contig, backbone string) (Contig, bool) {
  for _, c := range contigs {
    if c.Circular && c.Sequence == backbone {
      return c, true
    }
  }
  return Contig{}, false
}

// tileCircularContig walks c's node cycle past its own closing point to
// extend its sequence to length n, one base per node, in the same
// overlap order walkCircularContig discovered (§4.4's "circular...
// truncated at that node" becomes, here, the untruncated tiling of the
// same periodic walk).
func tileCircularContig(c Contig, k, n int) string {
  m := len(c.Nodes)
  if m == 0 {
    return c.Sequence
  }
  seq := []byte(c.Sequence)
  for i := 0; len(seq) < n; i++ {
    node := string(c.Nodes[i%m])
    seq = append(seq, node[k-1:]...)
  }
  if len(seq) > n {
    seq = seq[:n]
  }
  return string(seq)
}

func longestBackbone(backbones []string) string {
  longest := ""
  for _, b := range backbones {
    if len(b) > len(longest) || (len(b) == len(longest) && b < longest) {
      longest = b
    }
  }
  return longest
}

// topSeedCandidates scores every node as improved_sbh.py's
// _find_good_start_nodes does (out_degree*2 + sum(weight) -
// |out_degree-in_degree|) and returns the top `count`, for diagnostics
// only (SPEC_FULL.md §4 item 3); it never overrides the deterministic
// lexicographically-smallest seeding rule of §4.7.
func topSeedCandidates(g OverlapGraph, count int) []KMer {
  type scored struct {
    kmer  KMer
    score int
  }
  var all []scored
  for _, u := range g.Nodes() {
    weightSum := 0
    for _, e := range g.Successors(u, 1) {
      weightSum += e.Weight
    }
    out, in := g.OutDegree(u), g.InDegree(u)
    diff := out - in
    if diff < 0 {
      diff = -diff
    }
    all = append(all, scored{kmer: u, score: out*2 + weightSum - diff})
  }
  sort.Slice(all, func(i, j int) bool {
    if all[i].score != all[j].score {
      return all[i].score > all[j].score
    }
    return all[i].kmer < all[j].kmer
  })
  if len(all) > count {
    all = all[:count]
  }
  r := make([]KMer, len(all))
  for i, s := range all {
    r[i] = s.kmer
  }
  return r
}

/* -------------------------------------------------------------------------- */

// BaseBalance scores how close seq's A/C/G/T composition is to uniform
// (1.0 is perfectly balanced), following improved_sbh.py's
// _calculate_nucleotide_balance (SPEC_FULL.md §4 item 2).
func BaseBalance(seq string) float64 {
  if len(seq) == 0 {
    return 0
  }
  counts := make(map[byte]int)
  for i := 0; i < len(seq); i++ {
    counts[seq[i]]++
  }
  total := float64(len(seq))
  balance := 1.0
  for _, b := range bases {
    freq := float64(counts[b]) / total
    diff := freq - 0.25
    if diff < 0 {
      diff = -diff
    }
    balance -= diff * 0.5
  }
  if balance < 0 {
    balance = 0
  }
  return balance
}

// SpectrumCoverage is the fraction of the input spectrum's unique
// k-mers present as a window of seq, following improved_sbh.py's
// _calculate_spectrum_coverage (SPEC_FULL.md §4 item 4).
func SpectrumCoverage(seq string, spectrum Spectrum) float64 {
  unique := spectrum.Unique()
  if len(unique) == 0 {
    return 1
  }
  if len(seq) < spectrum.K {
    return 0
  }
  seqKmers := make(map[string]bool)
  for i := 0; i+spectrum.K <= len(seq); i++ {
    seqKmers[seq[i:i+spectrum.K]] = true
  }
  hit := 0
  for _, kmer := range unique {
    if seqKmers[string(kmer)] {
      hit++
    }
  }
  return float64(hit) / float64(len(unique))
}
