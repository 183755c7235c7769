package kwg

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhunt/tilemapping"
)

var (
	ErrTooLarge  = errors.New("word graph has too many arcs")
	ErrTruncated = errors.New("kwg file is truncated")
	ErrMalformed = errors.New("kwg file is malformed")
)

// node is a temporary type used in the creation of a KWG.
// It will not be used when loading the KWG.
type node struct {
	arcs     []*arc
	terminal bool
	// Utility fields, for minimizing at the end:
	copyOf *node
	start  uint32
}

// arc is also a temporary type.
type arc struct {
	letter      tilemapping.MachineLetter
	destination *node
}

type arcPtrSlice []*arc

func (a arcPtrSlice) Len() int           { return len(a) }
func (a arcPtrSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a arcPtrSlice) Less(i, j int) bool { return a[i].letter < a[j].letter }

// Does the node contain an arc for the letter c? Return the arc if so.
func (n *node) containsArc(c tilemapping.MachineLetter) *arc {
	for _, a := range n.arcs {
		if a.letter == c {
			return a
		}
	}
	return nil
}

// Adds an arc from n for c if one does not already exist, and returns the
// node this arc leads to.
func (n *node) addArc(c tilemapping.MachineLetter) *node {
	if existing := n.containsArc(c); existing != nil {
		return existing.destination
	}
	next := &node{}
	n.arcs = append(n.arcs, &arc{letter: c, destination: next})
	return next
}

func (n *node) canonical() *node {
	if n.copyOf != nil {
		return n.copyOf
	}
	return n
}

// BuildStats describes what happened while building a graph.
type BuildStats struct {
	Words   int
	Skipped int
	Arcs    int
}

// Build makes a minimized KWG from a list of normalized words. Words that
// cannot be spelled with board tiles (for example a q without a u) are
// skipped.
func Build(name string, words []string) (*KWG, BuildStats, error) {
	root := &node{}
	var stats BuildStats
	for _, w := range words {
		mw, err := tilemapping.ToMachineWord(w)
		if err != nil || len(mw) == 0 {
			stats.Skipped++
			continue
		}
		cur := root
		for _, ml := range mw {
			cur = cur.addArc(ml)
		}
		if !cur.terminal {
			cur.terminal = true
			stats.Words++
		}
	}
	minimize(root)
	nodes, err := serialize(root)
	if err != nil {
		return nil, stats, err
	}
	stats.Arcs = len(nodes) - headerNodes
	log.Debug().Str("lexicon", name).Int("words", stats.Words).
		Int("skipped", stats.Skipped).Int("arcs", stats.Arcs).Msg("built-kwg")
	return &KWG{nodes: nodes, lexiconName: name}, stats, nil
}

// minimize merges nodes that accept exactly the same suffixes. Two nodes
// are the same if they are both terminal or both not, have the same arc
// letters, the same terminal flags on their children, and all their
// children are the same. A parent's arc takes its accepts bit from the
// node it leads to, so a node's own terminal flag is part of its identity.
// Children are always handled before their parents, so a signature built
// from canonical child pointers is enough to compare them.
func minimize(root *node) {
	seen := map[string]*node{}
	var visit func(n *node)
	visit = func(n *node) {
		var sig strings.Builder
		if n.terminal {
			sig.WriteByte('$')
		}
		sort.Sort(arcPtrSlice(n.arcs))
		for _, a := range n.arcs {
			visit(a.destination)
			a.destination = a.destination.canonical()
			sig.WriteString(strconv.Itoa(int(a.letter)))
			sig.WriteByte(':')
			if a.destination.terminal {
				sig.WriteByte('!')
			}
			fmt.Fprintf(&sig, "%p,", a.destination)
		}
		key := sig.String()
		if other, ok := seen[key]; ok && other != n {
			n.copyOf = other
			return
		}
		seen[key] = n
	}
	visit(root)
}

// serialize lays out every distinct node with arcs as a contiguous block,
// breadth first from the root.
func serialize(root *node) ([]uint32, error) {
	nodes := make([]uint32, headerNodes)
	order := []*node{}
	queued := map[*node]bool{}
	next := uint32(headerNodes)
	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if len(n.arcs) == 0 || queued[n] {
			continue
		}
		queued[n] = true
		n.start = next
		next += uint32(len(n.arcs))
		order = append(order, n)
		for _, a := range n.arcs {
			queue = append(queue, a.destination)
		}
	}
	if next > arcMask {
		return nil, fmt.Errorf("%w: %d", ErrTooLarge, next)
	}
	for _, n := range order {
		for i, a := range n.arcs {
			el := uint32(a.letter) << tileShift
			if a.destination.terminal {
				el |= acceptsBit
			}
			if i == len(n.arcs)-1 {
				el |= endBit
			}
			if len(a.destination.arcs) > 0 {
				el |= a.destination.start
			}
			nodes = append(nodes, el)
		}
	}
	rootIdx := uint32(0)
	if len(root.arcs) > 0 {
		rootIdx = root.start
	}
	nodes[0] = endBit | rootIdx
	nodes[1] = endBit | rootIdx
	return nodes, nil
}
