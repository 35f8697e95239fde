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

// Edge is a directed, weighted overlap edge u -> v: the last w
// characters of u equal the first w characters of v, and no longer
// such overlap exists between u and v.
type Edge struct {
  To     KMer
  Weight int
}

// OverlapGraph is a directed graph on a ReliableSet R with edges u -> v
// weighted by their overlap length. Design note: rather than a
// general-purpose graph library (the source this package generalizes
// leans on one), the graph is two hash maps of edge lists -- outgoing
// and incoming per node -- plus per-node degree tables, built from
// hash indices of node prefixes at every overlap width.
type OverlapGraph struct {
  k      int
  nodes  []KMer
  out    map[KMer][]Edge
  in     map[KMer][]Edge
  outDeg map[KMer]int
  inDeg  map[KMer]int
}

/* -------------------------------------------------------------------------- */

// BuildOverlapGraph constructs the overlap graph over R, using
// prefix hash indices at every width in [minOverlap, k-1] to find, for
// every node, each successor (and symmetric predecessor) sharing any
// overlap in that range. Multi-edges between the same pair collapse to
// their single highest-weight edge.
func BuildOverlapGraph(r ReliableSet, k int, minOverlap int) OverlapGraph {
  g := OverlapGraph{
    k:      k,
    nodes:  append([]KMer(nil), r.Kmers...),
    out:    make(map[KMer][]Edge),
    in:     make(map[KMer][]Edge),
    outDeg: make(map[KMer]int),
    inDeg:  make(map[KMer]int),
  }

  // index nodes by their prefix at every width in [minOverlap, k-1], so
  // that for a given u we can look up, at each width w in descending
  // order, the set of nodes whose prefix(w) equals u's suffix(w) --
  // width is always matched on both sides of the lookup, so a single
  // un-annotated string map is enough (no cross-width collisions).
  byPrefix := make(map[int]map[string][]KMer, k-minOverlap)
  for w := minOverlap; w <= k-1; w++ {
    idx := make(map[string][]KMer)
    for _, u := range g.nodes {
      p := string(u.Prefix(w))
      idx[p] = append(idx[p], u)
    }
    byPrefix[w] = idx
  }

  for _, u := range g.nodes {
    best := make(map[KMer]int) // candidate v -> best (highest) weight seen
    for w := k - 1; w >= minOverlap; w-- {
      for _, v := range byPrefix[w][string(u.Suffix(w))] {
        if u != v {
          if _, seen := best[v]; !seen {
            best[v] = w
          }
        }
      }
    }
    // self-loops are permitted only when u == v (§3 data model); a
    // self-loop exists iff u's own (k-1)-suffix equals its own prefix
    if u.Suffix(k-1) == u.Prefix(k-1) {
      best[u] = k - 1
    }
    for v, w := range best {
      g.out[u] = append(g.out[u], Edge{To: v, Weight: w})
      g.in[v] = append(g.in[v], Edge{To: u, Weight: w})
    }
  }

  for _, u := range g.nodes {
    sortEdges(g.out[u])
    g.outDeg[u] = len(g.out[u])
  }
  for _, v := range g.nodes {
    sortEdges(g.in[v])
    g.inDeg[v] = len(g.in[v])
  }

  return g
}

func sortEdges(edges []Edge) {
  sort.Slice(edges, func(i, j int) bool {
    if edges[i].Weight != edges[j].Weight {
      return edges[i].Weight > edges[j].Weight
    }
    return edges[i].To < edges[j].To
  })
}

/* -------------------------------------------------------------------------- */

// Successors returns the (v, w) pairs reachable from u by an edge of
// weight >= minOverlap, sorted by weight descending then v ascending.
func (obj OverlapGraph) Successors(u KMer, minOverlap int) []Edge {
  return filterByMinOverlap(obj.out[u], minOverlap)
}

// Predecessors is the symmetric counterpart of Successors.
func (obj OverlapGraph) Predecessors(u KMer, minOverlap int) []Edge {
  return filterByMinOverlap(obj.in[u], minOverlap)
}

func filterByMinOverlap(edges []Edge, minOverlap int) []Edge {
  r := make([]Edge, 0, len(edges))
  for _, e := range edges {
    if e.Weight >= minOverlap {
      r = append(r, e)
    }
  }
  return r
}

// InDegree is the number of (k-1)-overlap predecessors of u.
func (obj OverlapGraph) InDegree(u KMer) int {
  return len(filterByMinOverlap(obj.in[u], obj.k-1))
}

// OutDegree is the number of (k-1)-overlap successors of u.
func (obj OverlapGraph) OutDegree(u KMer) int {
  return len(filterByMinOverlap(obj.out[u], obj.k-1))
}

// Nodes returns every node of the graph (the reliable set it was built
// over), in construction order.
func (obj OverlapGraph) Nodes() []KMer {
  return obj.nodes
}
