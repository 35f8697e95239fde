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

import "sort"

/* -------------------------------------------------------------------------- */

// Contig is a string >= k produced by concatenating a non-branching
// path in the (k-1)-overlap subgraph. Nodes are carried for
// traceability (§3 data model).
type Contig struct {
  Sequence string
  Nodes    []KMer
  Circular bool
}

/* -------------------------------------------------------------------------- */

// ExtractContigs walks the (k-1)-overlap subgraph of g and returns its
// maximal non-branching paths (unitigs), per §4.4: a contig starts at
// any node with in-degree != 1 (including 0), and extends while the
// current node has out-degree 1 and the successor has in-degree 1.
// Every node of g appears in exactly one contig. Cycles whose interior
// nodes all have degree 1 are reported once, opened at their
// lexicographically smallest node, and marked Circular.
//
// Output is sorted by length descending, then lexicographically.
func ExtractContigs(g OverlapGraph, k int) []Contig {
  visited := make(map[KMer]bool)
  var contigs []Contig

  nodes := append([]KMer(nil), g.Nodes()...)
  sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

  // non-circular contigs: start at every node that is not a pure
  // mid-path node (in-degree != 1, or in-degree == 0)
  for _, start := range nodes {
    if visited[start] || g.InDegree(start) == 1 {
      continue
    }
    contigs = append(contigs, walkContig(g, start, visited, k))
  }

  // remaining unvisited nodes all have in-degree 1: they lie on cycles
  // with all interior degrees == 1, or on chains entered from a
  // branching node. Open each walk at its lexicographically minimal
  // node; only a walk that closes back on its start is marked Circular.
  for _, start := range nodes {
    if visited[start] {
      continue
    }
    contigs = append(contigs, walkCircularContig(g, start, visited, k))
  }

  sort.Slice(contigs, func(i, j int) bool {
    if len(contigs[i].Sequence) != len(contigs[j].Sequence) {
      return len(contigs[i].Sequence) > len(contigs[j].Sequence)
    }
    return contigs[i].Sequence < contigs[j].Sequence
  })
  return contigs
}

// walkContig extends forward from start while the current node has
// out-degree 1 and its sole successor has in-degree 1.
func walkContig(g OverlapGraph, start KMer, visited map[KMer]bool, k int) Contig {
  nodePath := []KMer{start}
  visited[start] = true
  cur := start
  for g.OutDegree(cur) == 1 {
    next := g.Successors(cur, k-1)[0].To
    if g.InDegree(next) != 1 || visited[next] {
      break
    }
    nodePath = append(nodePath, next)
    visited[next] = true
    cur = next
  }
  return Contig{Sequence: buildSequence(nodePath, k), Nodes: nodePath}
}

// walkCircularContig extends forward from start until it returns to
// start, truncating there, or until it reaches a node with no successor
// or an already-visited node. The contig is marked Circular only when
// the walk returns to start.
func walkCircularContig(g OverlapGraph, start KMer, visited map[KMer]bool, k int) Contig {
  nodePath := []KMer{start}
  visited[start] = true
  cur := start
  circular := false
  for {
    succ := g.Successors(cur, k-1)
    if len(succ) == 0 {
      break
    }
    next := succ[0].To
    if next == start {
      circular = true
      break
    }
    if visited[next] {
      break
    }
    nodePath = append(nodePath, next)
    visited[next] = true
    cur = next
  }
  return Contig{Sequence: buildSequence(nodePath, k), Nodes: nodePath, Circular: circular}
}

// buildSequence concatenates a non-branching node path into its
// represented string: the first node in full, then one new character
// (the overlap's complement) per subsequent node.
func buildSequence(nodePath []KMer, k int) string {
  if len(nodePath) == 0 {
    return ""
  }
  seq := string(nodePath[0])
  for i := 1; i < len(nodePath); i++ {
    seq += string(nodePath[i])[k-1:]
  }
  return seq
}
