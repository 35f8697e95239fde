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

import "testing"

// TestSetProfileThresholdsRetunesModeSelection confirms
// SetProfileThresholds actually reaches selectMode, the wiring
// config/config.go's ModeThresholds exists to exercise.
func TestSetProfileThresholdsRetunesModeSelection(test *testing.T) {
  original := profileThresholds
  defer SetProfileThresholds(original)

  // Loosen the Conservative band enough that a middling entropy/coverage
  // profile, which would otherwise fall through to Aggressive, now
  // qualifies as Conservative.
  SetProfileThresholds(ProfileThresholds{
    ConservativeCoverageLow:  0.0,
    ConservativeCoverageHigh: 2.0,
    ConservativeDuplication:  1.0,
    ConservativeEntropy:      0.0,
    AggressiveCoverageLow:    0.80,
    AggressiveCoverageHigh:   1.20,
    AggressiveEntropy:        1.7,
  })

  if mode := selectMode(1.0, 0.5, 1.8); mode != Conservative {
    test.Errorf("expected the loosened thresholds to select Conservative, got %s", mode)
  }
}

// TestSetCandidateSizesOverridesPerModeDefault confirms
// SetCandidateSizes actually reaches ParamsFor, the wiring
// config/config.go's CandidateSizes exists to exercise.
func TestSetCandidateSizesOverridesPerModeDefault(test *testing.T) {
  original := candidateSizes
  defer SetCandidateSizes(original)

  SetCandidateSizes(CandidateSizes{Conservative: 1, Aggressive: 2, Rescue: 3})

  if p := ParamsFor(Aggressive, 0); p.CandidateSize != 2 {
    test.Errorf("expected the overridden Aggressive candidate size 2, got %d", p.CandidateSize)
  }
  // A positive Options.CandidateSize override still wins over both the
  // package default and the configured value.
  if p := ParamsFor(Aggressive, 99); p.CandidateSize != 99 {
    test.Errorf("expected the per-call override 99, got %d", p.CandidateSize)
  }
}
