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

/* -------------------------------------------------------------------------- */

func TestOverlapGraphBuild1(test *testing.T) {
  // ACGT -> CGTA -> GTAC -> TACG -> ACGT, a 4-cycle at k=4, overlap width 3
  r := newReliableSet([]KMer{"ACGT", "CGTA", "GTAC", "TACG"})
  g := BuildOverlapGraph(r, 4, 3)

  succ := g.Successors("ACGT", 3)
  if len(succ) != 1 || succ[0].To != "CGTA" || succ[0].Weight != 3 {
    test.Errorf("unexpected successors of ACGT: %v", succ)
  }
  if g.OutDegree("ACGT") != 1 {
    test.Errorf("expected out-degree 1, got %d", g.OutDegree("ACGT"))
  }
  if g.InDegree("ACGT") != 1 {
    test.Errorf("expected in-degree 1 (TACG -> ACGT closes the cycle), got %d", g.InDegree("ACGT"))
  }
  if g.InDegree("CGTA") != 1 {
    test.Errorf("expected in-degree 1, got %d", g.InDegree("CGTA"))
  }
}

func TestOverlapGraphSymmetry(test *testing.T) {
  // §8 invariant 5: v in successors(u,w) iff u in predecessors(v,w)
  r := newReliableSet([]KMer{"ACGT", "CGTA", "GTAC", "TACG", "ACGA"})
  g := BuildOverlapGraph(r, 4, 1)

  for _, u := range g.Nodes() {
    for _, e := range g.Successors(u, 1) {
      found := false
      for _, pe := range g.Predecessors(e.To, 1) {
        if pe.To == u && pe.Weight == e.Weight {
          found = true
          break
        }
      }
      if !found {
        test.Errorf("symmetry violated: %v -> %v (w=%d) has no matching predecessor edge", u, e.To, e.Weight)
      }
    }
  }
}

func TestOverlapGraphSelfLoop(test *testing.T) {
  // AAAA: suffix(3) == prefix(3) == "AAA", so a self-loop is permitted
  r := newReliableSet([]KMer{"AAAA"})
  g := BuildOverlapGraph(r, 4, 3)
  succ := g.Successors("AAAA", 3)
  if len(succ) != 1 || succ[0].To != "AAAA" {
    test.Errorf("expected a single self-loop, got %v", succ)
  }
}

func TestOverlapGraphMultiEdgeCollapse(test *testing.T) {
  // AAGAG's suffix matches GAGTT's prefix at two widths, 3 ("GAG") and
  // 1 ("G"); confirm only the highest-weight edge survives.
  r := newReliableSet([]KMer{"AAGAG", "GAGTT"})
  g := BuildOverlapGraph(r, 5, 1)
  succ := g.Successors("AAGAG", 1)
  if len(succ) != 1 {
    test.Errorf("expected multi-edges to collapse to one, got %d edges", len(succ))
  }
  if succ[0].Weight != 3 {
    test.Errorf("expected highest-weight overlap (3), got %d", succ[0].Weight)
  }
}
