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

func TestExtractContigsNonBranchingChain(test *testing.T) {
  // ACGTACG: k=4, 4-mers ACGT, CGTA, GTAC, TACG form a single
  // non-branching path (TACG -> ACGT closes it into a cycle), reported
  // as one contig opened at ACGT.
  r := newReliableSet(kmersOf("ACGT", "CGTA", "GTAC", "TACG"))
  g := BuildOverlapGraph(r, 4, 3)
  contigs := ExtractContigs(g, 4)
  if len(contigs) != 1 {
    test.Fatalf("expected a single contig, got %d", len(contigs))
  }
  if contigs[0].Sequence != "ACGTACG" {
    test.Errorf("expected ACGTACG, got %s", contigs[0].Sequence)
  }
}

func TestExtractContigsPartitionsEveryNode(test *testing.T) {
  kmers := kmersOf("ACGT", "CGTA", "GTAC", "TACG", "AAAA")
  r := newReliableSet(kmers)
  g := BuildOverlapGraph(r, 4, 3)
  contigs := ExtractContigs(g, 4)

  seen := make(map[KMer]int)
  for _, c := range contigs {
    for _, n := range c.Nodes {
      seen[n]++
    }
  }
  for _, kmer := range kmers {
    if seen[kmer] != 1 {
      test.Errorf("expected %s in exactly one contig, appeared in %d", kmer, seen[kmer])
    }
  }
}

func TestExtractContigsBranchTerminatesBoth(test *testing.T) {
  // ACGT branches to CGTA and CGTC (both share the same 3-overlap
  // prefix from ACGT's suffix), so ACGT's out-degree is 2: it cannot
  // be a non-branching interior node and must form its own contig.
  r := newReliableSet(kmersOf("ACGT", "CGTA", "CGTC"))
  g := BuildOverlapGraph(r, 4, 3)
  if g.OutDegree("ACGT") != 2 {
    test.Fatalf("expected ACGT to have out-degree 2, got %d", g.OutDegree("ACGT"))
  }
  contigs := ExtractContigs(g, 4)
  foundSingleton := false
  for _, c := range contigs {
    if len(c.Nodes) == 1 && c.Nodes[0] == "ACGT" {
      foundSingleton = true
    }
  }
  if !foundSingleton {
    test.Errorf("expected ACGT to form its own singleton contig, got %v", contigs)
  }
}

func TestExtractContigsCircular(test *testing.T) {
  // ACGT -> CGTA -> GTAC -> TACG -> ACGT, a pure 4-cycle.
  r := newReliableSet(kmersOf("ACGT", "CGTA", "GTAC", "TACG"))
  g := BuildOverlapGraph(r, 4, 3)
  contigs := ExtractContigs(g, 4)
  if len(contigs) != 1 {
    test.Fatalf("expected a single circular contig, got %d", len(contigs))
  }
  if !contigs[0].Circular {
    test.Error("expected the contig to be marked circular")
  }
  if contigs[0].Nodes[0] != "ACGT" {
    test.Errorf("expected the cycle opened at its lexicographically minimal node ACGT, got %s", contigs[0].Nodes[0])
  }
}
