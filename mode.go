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

// Mode is the tagged variant produced by the spectrum profiler (C2) that
// parameterizes every downstream threshold. Design note: the source this
// package is modeled on selects behavior through ad-hoc branching on
// loose quality heuristics; here it is a single explicit enum so every
// mode-dependent decision switches on one value.
type Mode int

const (
  Conservative Mode = iota
  Aggressive
  Rescue
)

func (obj Mode) String() string {
  switch obj {
  case Conservative:
    return "conservative"
  case Aggressive:
    return "aggressive"
  case Rescue:
    return "rescue"
  default:
    return "unknown"
  }
}

// Downgrade returns the next, strictly less trusting mode. Mode
// transitions are one-way (§8 invariant 8): Conservative -> Aggressive
// -> Rescue, and Rescue never downgrades further.
func (obj Mode) Downgrade() Mode {
  switch obj {
  case Conservative:
    return Aggressive
  case Aggressive:
    return Rescue
  default:
    return Rescue
  }
}

/* -------------------------------------------------------------------------- */

// ModeParams collects every mode-tuned threshold used by C3 (reliability
// filter) and C7 (adaptive extender), so the rest of the package only
// ever asks "what does my current mode say" instead of branching on the
// mode tag itself.
type ModeParams struct {
  // C3 reliability filter
  MinEntropy          float64
  RequireLocalOverlap bool
  // C7 adaptive extender
  CandidateSize int
  // MinOverlapForJump is expressed as an offset from k: -1 means k-1,
  // -2 means k-2, -3 means k-3 (§4.6).
  MinOverlapForJump int
}

// CandidateSizes collects the per-mode candidate_size default of §4.6,
// overridable at runtime via SetCandidateSizes (see
// config/config.go's CandidateSizes, decoded from settings.yaml and
// wired in by tools/sbhreconstruct and tools/sbhbenchmark), and in turn
// overridable per run by Options.CandidateSize.
type CandidateSizes struct {
  Conservative int
  Aggressive   int
  Rescue       int
}

var candidateSizes = CandidateSizes{Conservative: 8, Aggressive: 20, Rescue: 30}

// SetCandidateSizes overrides the package-wide §4.6 candidate_size
// defaults used by every subsequent call to ParamsFor.
func SetCandidateSizes(sizes CandidateSizes) {
  candidateSizes = sizes
}

// ParamsFor returns the ModeParams for mode, honoring a candidateSize
// override (Options.CandidateSize) when it is > 0.
func ParamsFor(mode Mode, candidateSizeOverride int) ModeParams {
  var p ModeParams
  switch mode {
  case Conservative:
    p = ModeParams{MinEntropy: 1.4, RequireLocalOverlap: false, CandidateSize: candidateSizes.Conservative, MinOverlapForJump: -1}
  case Aggressive:
    p = ModeParams{MinEntropy: 1.2, RequireLocalOverlap: true, CandidateSize: candidateSizes.Aggressive, MinOverlapForJump: -2}
  case Rescue:
    p = ModeParams{MinEntropy: 0.0, RequireLocalOverlap: true, CandidateSize: candidateSizes.Rescue, MinOverlapForJump: -3}
  }
  if candidateSizeOverride > 0 {
    p.CandidateSize = candidateSizeOverride
  }
  return p
}
