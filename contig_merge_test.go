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

func TestMergeContigsSimpleOverlap(test *testing.T) {
  // "AAACGT" and "CGTTTT" overlap by 3 ("CGT") in exactly one
  // direction, k-1=3, so they should merge into "AAACGTTTT".
  contigs := []Contig{
    {Sequence: "AAACGT"},
    {Sequence: "CGTTTT"},
  }
  merged := MergeContigs(contigs, 4)
  if len(merged) != 1 {
    test.Fatalf("expected a single backbone, got %d: %v", len(merged), merged)
  }
  if merged[0] != "AAACGTTTT" {
    test.Errorf("expected AAACGTTTT, got %s", merged[0])
  }
}

func TestMergeContigsNoOverlapStaysApart(test *testing.T) {
  contigs := []Contig{
    {Sequence: "AAAA"},
    {Sequence: "TTTT"},
  }
  merged := MergeContigs(contigs, 4)
  if len(merged) != 2 {
    test.Fatalf("expected two independent backbones, got %d: %v", len(merged), merged)
  }
}

func TestSuffixPrefixOverlap(test *testing.T) {
  if o := suffixPrefixOverlap("ACGTACG", "TACGTAC", 3); o != 4 {
    test.Errorf("expected overlap 4, got %d", o)
  }
  if o := suffixPrefixOverlap("AAAA", "TTTT", 3); o != 0 {
    test.Errorf("expected overlap 0, got %d", o)
  }
}
