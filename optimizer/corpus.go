package optimizer

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/teatak/tag/ngram"
	"github.com/teatak/tag/util"
)

// Sentence is a training sentence with its golden tags.
type Sentence struct {
	Tokens []string
	Tags   []string
}

// LoadCorpus loads an annotated corpus file. Each line holds one sentence of
// "token/TAG" pairs separated by whitespace. The tag starts after the last
// slash, so tokens may themselves contain slashes.
func LoadCorpus(path string) ([]Sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data []Sentence
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var tokens, tags []string
		for _, pair := range strings.Fields(line) {
			cut := strings.LastIndexByte(pair, '/')
			if cut <= 0 || cut == len(pair)-1 {
				return nil, fmt.Errorf("optimizer: line %d: malformed pair %q", lineNo, pair)
			}
			tokens = append(tokens, pair[:cut])
			tags = append(tags, pair[cut+1:])
		}
		if len(tokens) > 0 {
			data = append(data, Sentence{Tokens: tokens, Tags: tags})
		}
	}
	return data, scanner.Err()
}

// CollectOutcomes returns the sorted set of tags occurring in the corpus.
// Sorting fixes the outcome index mapping independently of corpus order.
func CollectOutcomes(sentences []Sentence) []string {
	seen := make(map[string]bool)
	for _, sent := range sentences {
		for _, tag := range sent.Tags {
			seen[tag] = true
		}
	}
	outcomes := make([]string, 0, len(seen))
	for tag := range seen {
		outcomes = append(outcomes, tag)
	}
	sort.Strings(outcomes)
	return outcomes
}

// BuildLexicon collects the lexical words of the corpus into an n-gram model.
// Punctuation tokens are skipped. Callers typically apply a count cutoff
// before using the result as a known-word lexicon.
func BuildLexicon(sentences []Sentence) *ngram.Model {
	lex := ngram.NewModel()
	for _, sent := range sentences {
		for _, token := range sent.Tokens {
			if util.IsPunctuation(token) {
				continue
			}
			lex.Add(token)
		}
	}
	return lex
}
