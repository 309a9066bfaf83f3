package optimizer

import (
	"fmt"
	"log"

	"github.com/teatak/tag/beam"
	"github.com/teatak/tag/maxent"
	"github.com/teatak/tag/postag"
)

// Train fits a model to the corpus with perceptron updates: decode each
// sentence with the current weights and, on a mismatch, move weight from the
// predicted tag onto the golden tag for the features of every wrong position.
// The outcome vocabulary is the sorted tag set of the corpus.
func Train(sentences []Sentence, iter, beamSize int) (*maxent.Model, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("optimizer: empty corpus")
	}

	model := maxent.NewModel(CollectOutcomes(sentences)...)
	cg := postag.NewContextGen(nil)
	dec, err := beam.New(beamSize, model, cg, nil)
	if err != nil {
		return nil, err
	}

	for it := 1; it <= iter; it++ {
		correctCnt := 0

		for _, sent := range sentences {
			seq, err := dec.Best(sent.Tokens, nil)
			if err != nil {
				return nil, err
			}
			pred := seq.Outcomes()

			correct := true
			for i := range sent.Tags {
				if pred[i] != sent.Tags[i] {
					correct = false
					break
				}
			}
			if correct {
				correctCnt++
				continue
			}

			for i := range sent.Tokens {
				if pred[i] == sent.Tags[i] {
					continue
				}
				gold, _ := model.OutcomeIndex(sent.Tags[i])
				wrong, _ := model.OutcomeIndex(pred[i])
				// Features are history dependent, so the golden update uses
				// the golden tag history and the demotion uses the predicted
				// one.
				for _, f := range cg.Context(sent.Tokens, sent.Tags, i, nil) {
					model.UpdateFeat(f, gold, 1.0)
				}
				for _, f := range cg.Context(sent.Tokens, pred, i, nil) {
					model.UpdateFeat(f, wrong, -1.0)
				}
			}
		}

		log.Printf("Iteration %d: %d/%d sentences correct", it, correctCnt, len(sentences))
	}

	return model, nil
}

// TrainFile trains a model from an annotated corpus file and saves it.
func TrainFile(inputPath, outputPath string, iter, beamSize int) error {
	sentences, err := LoadCorpus(inputPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d sentences from %s", len(sentences), inputPath)

	model, err := Train(sentences, iter, beamSize)
	if err != nil {
		return err
	}
	log.Printf("Trained model: %d outcomes, %d features", model.NumOutcomes(), model.NumFeats())

	return model.Save(outputPath)
}
