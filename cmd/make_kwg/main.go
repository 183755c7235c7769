package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/wordhunt/kwg"
	"github.com/domino14/wordhunt/lexicon"
)

func main() {
	filename := pflag.String("filename", "", "filename of the word list")
	output := pflag.String("output", "", "where to write the kwg (defaults to the word list name with a .kwg extension)")
	pflag.Parse()

	if err := makeKWG(*filename, *output); err != nil {
		log.Fatal().Err(err).Msg("make-kwg-failed")
	}
}

func kwgFilename(wordList, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(wordList, filepath.Ext(wordList)) + kwg.Extension
}

func makeKWG(wordList, output string) error {
	if wordList == "" {
		return errors.New("no word list given")
	}
	dict, err := lexicon.LoadFile(wordList)
	if err != nil {
		return err
	}
	k, stats, err := kwg.Build(dict.Name(), dict.Words())
	if err != nil {
		return err
	}
	out := kwgFilename(wordList, output)
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := k.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Int("words", stats.Words).Int("skipped", stats.Skipped).
		Int("nodes", k.NumNodes()).Str("file", out).Msg("wrote-kwg")
	return nil
}
