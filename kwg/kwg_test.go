package kwg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordhunt/config"
	"github.com/domino14/wordhunt/lexicon"
	"github.com/domino14/wordhunt/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

var miniWords = []string{"a", "dare", "dares", "qat", "quest", "read", "reads", "rice", "sat", "tea", "teas"}

func TestBuild(t *testing.T) {
	is := is.New(t)
	k, stats, err := Build("mini", miniWords)
	is.NoErr(err)
	is.Equal(stats.Words, 10)
	is.Equal(stats.Skipped, 1) // qat
	is.Equal(k.LexiconName(), "mini")
	is.Equal(k.Words(), []string{"a", "dare", "dares", "quest", "read", "reads", "rice", "sat", "tea", "teas"})

	lex := Lexicon{KWG: *k}
	is.True(lex.HasWord("dares"))
	is.True(lex.HasWord("quest"))
	is.True(!lex.HasWord("dar"))
	is.True(!lex.HasWord("qat"))
	is.True(!lex.HasWord(""))
	is.True(!lex.HasWord("teased"))
}

func TestPrefixWalk(t *testing.T) {
	is := is.New(t)
	k, _, err := Build("mini", miniWords)
	is.NoErr(err)

	walk := func(word string) (uint32, bool) {
		mw, err := tilemapping.ToMachineWord(word)
		is.NoErr(err)
		nodeIdx := k.GetRootNodeIndex()
		accepts := false
		for _, ml := range mw {
			if nodeIdx == 0 {
				return 0, false
			}
			accepts = k.InLetterSet(ml, nodeIdx)
			nodeIdx = k.NextNodeIdx(nodeIdx, ml)
		}
		return nodeIdx, accepts
	}

	idx, accepts := walk("dar")
	is.True(idx != 0)
	is.True(!accepts)

	idx, accepts = walk("dares")
	is.Equal(idx, uint32(0)) // nothing extends dares
	is.True(accepts)

	idx, accepts = walk("x")
	is.Equal(idx, uint32(0))
	is.True(!accepts)

	idx, accepts = walk("qu")
	is.True(idx != 0)
	is.True(!accepts)
}

func TestMinimizeSharesSuffixes(t *testing.T) {
	is := is.New(t)
	min, _, err := Build("m", []string{"cats", "bats", "rats", "mats"})
	is.NoErr(err)
	// root block: b c m r (4 arcs), then one shared "a" node and one
	// shared "t" node. The final s leads nowhere, so it has no block.
	is.Equal(min.NumNodes(), headerNodes+4+1+1)
	is.Equal(min.Words(), []string{"bats", "cats", "mats", "rats"})
}

func TestMinimizeKeepsTerminalFlags(t *testing.T) {
	for _, words := range [][]string{
		{"a", "ab", "cb"},
		{"ea", "eat", "sat"},
		{"at", "ate", "bte", "b"},
		{"do", "dog", "log", "lo", "l"},
	} {
		k, stats, err := Build("t", words)
		require.NoError(t, err)
		assert.Equal(t, len(words), stats.Words)

		expected := append([]string{}, words...)
		sort.Strings(expected)
		assert.Equal(t, expected, k.Words())

		lex := Lexicon{KWG: *k}
		for _, w := range words {
			assert.True(t, lex.HasWord(w), w)
		}
		for _, nw := range []string{"c", "s", "sa", "e", "bt", "lg", "d"} {
			assert.Equal(t, slices.Contains(words, nw), lex.HasWord(nw), nw)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	is := is.New(t)
	k, _, err := Build("empty", nil)
	is.NoErr(err)
	is.Equal(k.GetRootNodeIndex(), uint32(0))
	is.Equal(len(k.Words()), 0)
	is.True(!FindMachineWord(k, tilemapping.MachineWord{1}))
	is.Equal(k.NextNodeIdx(0, 1), uint32(0))
	is.True(!k.InLetterSet(1, 0))
}

func TestWriteAndScan(t *testing.T) {
	is := is.New(t)
	k, _, err := Build("mini", miniWords)
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(k.Write(&buf))
	is.Equal(buf.Len(), 4*k.NumNodes())

	k2, err := ScanKWG(&buf)
	is.NoErr(err)
	is.Equal(k2.Words(), k.Words())

	_, err = ScanKWG(bytes.NewReader([]byte{1, 2, 3, 4}))
	is.True(errors.Is(err, ErrTruncated))
}

func TestScanRejectsMalformed(t *testing.T) {
	encode := func(nodes ...uint32) *bytes.Buffer {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, nodes))
		return &buf
	}
	for name, buf := range map[string]*bytes.Buffer{
		"arc past end":    encode(endBit|50, endBit|50),
		"child past end":  encode(endBit|2, endBit|2, 1<<tileShift|endBit|9),
		"unclosed run":    encode(endBit|2, endBit|2, 1<<tileShift),
		"unclosed header": encode(0, 0),
	} {
		_, err := ScanKWG(buf)
		assert.ErrorIs(t, err, ErrMalformed, name)
	}

	k, err := ScanKWG(encode(endBit|2, endBit|2, 1<<tileShift|acceptsBit|endBit))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, k.Words())
}

func TestGetBuildsFromWordList(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, "testdata")
	k, err := Get(&cfg, "mini")
	is.NoErr(err)
	is.Equal(k.LexiconName(), "mini")
	is.True(FindMachineWord(k, mustMW(t, "teas")))

	_, err = Get(&cfg, "nope")
	is.True(err != nil)
}

func TestGetPrefersKWGFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	k, _, err := Build("compiled", []string{"zap"})
	is.NoErr(err)
	f, err := os.Create(filepath.Join(dir, "compiled"+Extension))
	is.NoErr(err)
	is.NoErr(k.Write(f))
	is.NoErr(f.Close())

	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, dir)
	loaded, err := Get(&cfg, "compiled")
	is.NoErr(err)
	is.Equal(loaded.Words(), []string{"zap"})
	is.Equal(loaded.LexiconName(), "compiled")
}

func TestFromDictionary(t *testing.T) {
	is := is.New(t)
	d := lexicon.New("d", "Tea", "teas", "qi")
	k, err := FromDictionary(d)
	is.NoErr(err)
	is.Equal(k.Words(), []string{"tea", "teas"})
}

func mustMW(t *testing.T, s string) tilemapping.MachineWord {
	mw, err := tilemapping.ToMachineWord(s)
	if err != nil {
		t.Fatal(err)
	}
	return mw
}
