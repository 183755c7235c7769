package kwg

import (
	"github.com/domino14/wordhunt/tilemapping"
)

// Lexicon adapts a KWG to the lexicon.Lexicon interface.
type Lexicon struct {
	KWG
}

func (l Lexicon) Name() string {
	return l.LexiconName()
}

func (l Lexicon) HasWord(word string) bool {
	mw, err := tilemapping.ToMachineWord(word)
	if err != nil {
		return false
	}
	return FindMachineWord(&l.KWG, mw)
}

// FindMachineWord returns true if word is in the graph.
func FindMachineWord(k *KWG, word tilemapping.MachineWord) bool {
	if len(word) == 0 {
		return false
	}
	nodeIdx := k.GetRootNodeIndex()
	for i, ml := range word {
		if nodeIdx == 0 {
			return false
		}
		if i == len(word)-1 {
			return k.InLetterSet(ml, nodeIdx)
		}
		nodeIdx = k.NextNodeIdx(nodeIdx, ml)
	}
	return false
}

// Words returns every word in the graph, in tile order.
func (k *KWG) Words() []string {
	words := []string{}
	var prefix tilemapping.MachineWord
	var walk func(nodeIdx uint32)
	walk = func(nodeIdx uint32) {
		k.IterateSiblings(nodeIdx, func(ml tilemapping.MachineLetter, accepts bool, nnidx uint32) {
			prefix = append(prefix, ml)
			if accepts {
				words = append(words, prefix.UserVisible())
			}
			walk(nnidx)
			prefix = prefix[:len(prefix)-1]
		})
	}
	walk(k.GetRootNodeIndex())
	return words
}
