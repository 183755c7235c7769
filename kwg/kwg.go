package kwg

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhunt/tilemapping"
)

// A KWG is a Kurnia Word Graph: a node array where every element is one
// outgoing arc, and the arcs leaving a node sit next to each other with the
// last one flagged. More information is available here:
// https://github.com/andy-k/wolges/blob/main/details.txt
//
// Each 32-bit element packs
//
//	bits 24-31: tile (a tilemapping.MachineLetter)
//	bit  23:    accepts; the path up to and including this tile is a word
//	bit  22:    end of the sibling list
//	bits 0-21:  index of the first arc of the child node, 0 if none
//
// Elements 0 and 1 point at the roots. We only ever build the DAWG, so both
// point at the same node.
type KWG struct {
	// Nodes is just a slice of 32-bit elements, the node array.
	nodes       []uint32
	lexiconName string
}

const (
	acceptsBit  = 0x800000
	endBit      = 0x400000
	arcMask     = 0x3fffff
	tileShift   = 24
	headerNodes = 2
)

func ScanKWG(data io.Reader) (*KWG, error) {
	nodes := []uint32{}
	var node uint32
	for {
		err := binary.Read(data, binary.LittleEndian, &node)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) < headerNodes {
		return nil, ErrTruncated
	}
	if err := checkNodes(nodes); err != nil {
		return nil, err
	}
	log.Debug().Int("num-nodes", len(nodes)).Msg("loaded-kwg")
	return &KWG{nodes: nodes}, nil
}

// checkNodes makes sure every lookup on nodes stays inside the array: each
// arc index is in range and the last sibling run is closed.
func checkNodes(nodes []uint32) error {
	n := uint32(len(nodes))
	for i, el := range nodes {
		if el&arcMask >= n {
			return fmt.Errorf("%w: node %d points at %d, only %d nodes", ErrMalformed, i, el&arcMask, n)
		}
	}
	if nodes[n-1]&endBit == 0 {
		return fmt.Errorf("%w: last sibling run has no end", ErrMalformed)
	}
	return nil
}

// Write writes the node array in the same little-endian form ScanKWG reads.
func (k *KWG) Write(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, k.nodes)
}

// GetRootNodeIndex returns the first arc of the DAWG root. It is 0 for an
// empty graph.
func (k *KWG) GetRootNodeIndex() uint32 {
	return k.ArcIndex(0)
}

func (k *KWG) LexiconName() string {
	return k.lexiconName
}

// NumNodes returns the size of the node array.
func (k *KWG) NumNodes() int {
	return len(k.nodes)
}

// NextNodeIdx follows the arc for letter out of the node starting at
// nodeIdx. It returns 0 if there is no such arc or the arc leads nowhere.
func (k *KWG) NextNodeIdx(nodeIdx uint32, letter tilemapping.MachineLetter) uint32 {
	for i := nodeIdx; ; i++ {
		if k.Tile(i) == uint8(letter) {
			return k.ArcIndex(i)
		}
		if k.IsEnd(i) {
			return 0
		}
	}
}

// InLetterSet returns true if following letter out of the node at nodeIdx
// completes a word.
func (k *KWG) InLetterSet(letter tilemapping.MachineLetter, nodeIdx uint32) bool {
	for i := nodeIdx; ; i++ {
		if k.Tile(i) == uint8(letter) {
			return k.accepts(i)
		}
		if k.IsEnd(i) {
			return false
		}
	}
}

func (k *KWG) IsEnd(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&endBit != 0
}

func (k *KWG) accepts(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&acceptsBit != 0
}

func (k *KWG) ArcIndex(nodeIdx uint32) uint32 {
	return k.nodes[nodeIdx] & arcMask
}

func (k *KWG) Tile(nodeIdx uint32) uint8 {
	return uint8(k.nodes[nodeIdx] >> tileShift)
}

// IterateSiblings calls cb for every arc of the node starting at nodeIdx.
func (k *KWG) IterateSiblings(nodeIdx uint32, cb func(ml tilemapping.MachineLetter, accepts bool, nnidx uint32)) {
	if nodeIdx == 0 {
		return
	}
	for i := nodeIdx; ; i++ {
		cb(tilemapping.MachineLetter(k.Tile(i)), k.accepts(i), k.ArcIndex(i))
		if k.IsEnd(i) {
			break
		}
	}
}
