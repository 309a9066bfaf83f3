package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/teatak/tag/maxent"
	"github.com/teatak/tag/ngram"
	"github.com/teatak/tag/postag"
)

func main() {
	test := flag.String("test", "", "Tag a single quoted sentence instead of reading stdin")
	beamSize := flag.Int("beam", 3, "Beam width for the tag search")
	lexPath := flag.String("lexicon", "", "Optional path to a known-word lexicon file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tag [flags] model_file < sentences")
		fmt.Fprintln(os.Stderr, "       tag [flags] -test \"sentence\" model_file")
		flag.PrintDefaults()
		os.Exit(1)
	}

	model, err := maxent.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	opts := []postag.Option{postag.WithBeamSize(*beamSize)}
	if *lexPath != "" {
		lexicon, err := ngram.Load(*lexPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, postag.WithContextGenerator(postag.NewContextGen(lexicon)))
	}

	tagger, err := postag.New(model, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	process := func(sentence string) {
		tagged, err := tagger.TagSentence(sentence)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error tagging %q: %v\n", sentence, err)
			return
		}
		fmt.Println(tagged)
	}

	if *test != "" {
		process(*test)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		process(line)
	}
}
