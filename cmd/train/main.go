package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/teatak/tag/optimizer"
)

func main() {
	inputPath := flag.String("input", "data/corpus.txt", "Path to the annotated corpus (token/TAG per token)")
	outputPath := flag.String("output", "data/pos_model.txt", "Path to save the trained model")
	lexPath := flag.String("lexicon", "", "Optional path to save a known-word lexicon built from the corpus")
	cutoff := flag.Int("cutoff", 1, "Minimum count for a word to stay in the lexicon")
	iter := flag.Int("iter", 10, "Number of training iterations")
	beamSize := flag.Int("beam", 3, "Beam width used while decoding during training")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Please provide input corpus using -input")
		os.Exit(1)
	}

	fmt.Printf("Training POS model...\n")
	fmt.Printf("Input: %s\n", *inputPath)
	fmt.Printf("Output: %s\n", *outputPath)
	fmt.Printf("Iterations: %d\n", *iter)

	if err := optimizer.TrainFile(*inputPath, *outputPath, *iter, *beamSize); err != nil {
		fmt.Fprintf(os.Stderr, "Training failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully saved model to %s\n", *outputPath)

	if *lexPath != "" {
		sentences, err := optimizer.LoadCorpus(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Lexicon build failed: %v\n", err)
			os.Exit(1)
		}
		lexicon := optimizer.BuildLexicon(sentences)
		lexicon.Cutoff(*cutoff, math.MaxInt)
		if err := lexicon.Save(*lexPath); err != nil {
			fmt.Fprintf(os.Stderr, "Lexicon save failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully saved lexicon (%d words) to %s\n", lexicon.Size(), *lexPath)
	}
}
