package ngram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// sep joins the tokens of a gram into a single map key. Tokens produced by
// whitespace tokenization never contain it.
const sep = "\x1f"

// Model counts token n-grams. Count returns 0 for any gram that was never
// added, never an error.
type Model struct {
	grams map[string]int
}

// NewModel creates an empty n-gram model.
func NewModel() *Model {
	return &Model{grams: make(map[string]int)}
}

func key(tokens []string) string {
	return strings.Join(tokens, sep)
}

// Add records one occurrence of the gram.
func (m *Model) Add(tokens ...string) {
	m.grams[key(tokens)]++
}

// AddAll records every sub-gram of tokens with length between minLen and
// maxLen inclusive.
func (m *Model) AddAll(tokens []string, minLen, maxLen int) {
	for length := minLen; length <= maxLen; length++ {
		for start := 0; start+length <= len(tokens); start++ {
			m.Add(tokens[start : start+length]...)
		}
	}
}

// AddChars records lowercased character grams of s with length between
// minLen and maxLen inclusive.
func (m *Model) AddChars(s string, minLen, maxLen int) {
	runes := []rune(s)
	for length := minLen; length <= maxLen; length++ {
		for start := 0; start+length <= len(runes); start++ {
			m.Add(strings.ToLower(string(runes[start : start+length])))
		}
	}
}

// Count returns how often the gram was added, 0 if never.
func (m *Model) Count(tokens ...string) int {
	return m.grams[key(tokens)]
}

// Contains reports whether the gram has been added.
func (m *Model) Contains(tokens ...string) bool {
	_, ok := m.grams[key(tokens)]
	return ok
}

// SetCount overwrites the count of a gram, inserting it if absent.
func (m *Model) SetCount(count int, tokens ...string) {
	m.grams[key(tokens)] = count
}

// Remove drops the gram.
func (m *Model) Remove(tokens ...string) {
	delete(m.grams, key(tokens))
}

// Size returns the number of distinct grams.
func (m *Model) Size() int {
	return len(m.grams)
}

// Total returns the sum of all gram counts.
func (m *Model) Total() int {
	total := 0
	for _, c := range m.grams {
		total += c
	}
	return total
}

// Grams returns every gram in the model. Order is unspecified.
func (m *Model) Grams() [][]string {
	out := make([][]string, 0, len(m.grams))
	for k := range m.grams {
		out = append(out, strings.Split(k, sep))
	}
	return out
}

// Cutoff drops every gram counted fewer than under times or more than over
// times.
func (m *Model) Cutoff(under, over int) {
	for k, c := range m.grams {
		if c < under || c > over {
			delete(m.grams, k)
		}
	}
}

// Load reads a model from a text file written by Save.
func Load(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads a model in the text format written by Write.
// Format lines: N count tok1 tok2 ...
func Read(r io.Reader) (*Model, error) {
	m := NewModel()

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if parts[0] != "N" || len(parts) < 3 {
			return nil, fmt.Errorf("ngram: line %d: malformed record", lineNo)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("ngram: line %d: bad count: %w", lineNo, err)
		}
		m.SetCount(count, parts[2:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes the model to a text file readable by Load.
func (m *Model) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err := m.Write(writer); err != nil {
		return err
	}
	return writer.Flush()
}

// Write writes the model in the text format understood by Read.
func (m *Model) Write(w io.Writer) error {
	for k, c := range m.grams {
		tokens := strings.ReplaceAll(k, sep, " ")
		if _, err := fmt.Fprintf(w, "N %d %s\n", c, tokens); err != nil {
			return err
		}
	}
	return nil
}
