package maxent

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Model is a log-linear model over string feature predicates. It owns the
// fixed, ordered outcome vocabulary and is the sole authority mapping outcome
// index to outcome label. Once loaded or trained it is read-only as far as
// Eval is concerned, so a single instance may be shared by concurrent
// decoders.
type Model struct {
	outcomes []string
	index    map[string]int
	// feats[feature][outcome_index] = weight
	feats map[string]map[int]float64
}

// NewModel creates a model with the given outcome vocabulary, indexed in
// declaration order.
func NewModel(outcomes ...string) *Model {
	m := &Model{
		outcomes: append([]string(nil), outcomes...),
		index:    make(map[string]int, len(outcomes)),
		feats:    make(map[string]map[int]float64),
	}
	for i, o := range m.outcomes {
		m.index[o] = i
	}
	return m
}

// NumOutcomes returns the size of the outcome vocabulary.
func (m *Model) NumOutcomes() int {
	return len(m.outcomes)
}

// Outcome returns the label for an outcome index, or "" if out of range.
func (m *Model) Outcome(i int) string {
	if i < 0 || i >= len(m.outcomes) {
		return ""
	}
	return m.outcomes[i]
}

// OutcomeIndex returns the index of a label in the outcome vocabulary.
func (m *Model) OutcomeIndex(label string) (int, bool) {
	i, ok := m.index[label]
	return i, ok
}

// AllOutcomes returns a copy of the ordered outcome vocabulary.
func (m *Model) AllOutcomes() []string {
	return append([]string(nil), m.outcomes...)
}

// Eval returns the probability distribution over the outcome vocabulary for
// the given feature context. The result always has length NumOutcomes and is
// aligned to the index mapping. Eval allocates its own result slice and reads
// no mutable state, so it is safe to call concurrently.
func (m *Model) Eval(context []string) ([]float64, error) {
	n := len(m.outcomes)
	if n == 0 {
		return nil, fmt.Errorf("maxent: model has no outcomes")
	}

	scores := make([]float64, n)
	for _, feat := range context {
		if weights, ok := m.feats[feat]; ok {
			for outcome, w := range weights {
				scores[outcome] += w
			}
		}
	}

	// Softmax with max subtraction to keep exp in range.
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	sum := 0.0
	probs := make([]float64, n)
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// UpdateFeat adjusts a feature weight, dropping entries that reach zero.
func (m *Model) UpdateFeat(feat string, outcome int, delta float64) {
	if m.feats[feat] == nil {
		m.feats[feat] = make(map[int]float64)
	}
	m.feats[feat][outcome] += delta
	if m.feats[feat][outcome] == 0 {
		delete(m.feats[feat], outcome)
		if len(m.feats[feat]) == 0 {
			delete(m.feats, feat)
		}
	}
}

// NumFeats returns the number of distinct feature predicates with weights.
func (m *Model) NumFeats() int {
	return len(m.feats)
}

// Load reads a model from a text file saved by Save.
func Load(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads a model in the text format written by Write.
// Format lines:
// O outcome
// F feature_string outcome weight
// Outcome declaration order fixes the index mapping, and every F record must
// name a declared outcome.
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

		switch parts[0] {
		case "O":
			if len(parts) != 2 {
				return nil, fmt.Errorf("maxent: line %d: malformed outcome record", lineNo)
			}
			label := parts[1]
			if _, dup := m.index[label]; dup {
				return nil, fmt.Errorf("maxent: line %d: duplicate outcome %q", lineNo, label)
			}
			m.index[label] = len(m.outcomes)
			m.outcomes = append(m.outcomes, label)
		case "F":
			if len(parts) != 4 {
				return nil, fmt.Errorf("maxent: line %d: malformed feature record", lineNo)
			}
			outcome, ok := m.index[parts[2]]
			if !ok {
				return nil, fmt.Errorf("maxent: line %d: undeclared outcome %q", lineNo, parts[2])
			}
			weight, err := strconv.ParseFloat(parts[3], 64)
			if err != nil {
				return nil, fmt.Errorf("maxent: line %d: bad weight: %w", lineNo, err)
			}
			if m.feats[parts[1]] == nil {
				m.feats[parts[1]] = make(map[int]float64)
			}
			m.feats[parts[1]][outcome] = weight
		default:
			return nil, fmt.Errorf("maxent: line %d: unknown record kind %q", lineNo, parts[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.outcomes) == 0 {
		return nil, fmt.Errorf("maxent: model declares no outcomes")
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
	for _, o := range m.outcomes {
		if _, err := fmt.Fprintf(w, "O %s\n", o); err != nil {
			return err
		}
	}
	for feat, weights := range m.feats {
		for outcome, weight := range weights {
			if weight != 0 {
				if _, err := fmt.Fprintf(w, "F %s %s %g\n", feat, m.outcomes[outcome], weight); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
