package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"

	"github.com/teatak/tag/beam"
	"github.com/teatak/tag/maxent"
	"github.com/teatak/tag/ngram"
	"github.com/teatak/tag/postag"
	"github.com/teatak/tag/tokenizer"
)

// Config is the server configuration file.
type Config struct {
	Listen   string `yaml:"listen"`
	Model    string `yaml:"model"`
	Lexicon  string `yaml:"lexicon"`
	BeamSize int    `yaml:"beam_size"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Listen:   ":8080",
		Model:    "data/pos_model.txt",
		BeamSize: beam.DefaultSize,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Global tagger with RWMutex for hot reloading.
var (
	tagger  *postag.Tagger
	tagLock sync.RWMutex
	cfg     Config
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	var err error
	cfg, err = loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	if err := reloadEngine(); err != nil {
		log.Fatalf("Initial load failed: %v", err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/tag", handleTag).Methods(http.MethodPost)
	r.HandleFunc("/reload", handleReload).Methods(http.MethodPost)

	log.Printf("Server started on %s", cfg.Listen)
	log.Fatal(http.ListenAndServe(cfg.Listen, r))
}

// reloadEngine reloads model and lexicon from disk safely.
func reloadEngine() error {
	log.Println("Reloading engine...")

	model, err := maxent.Load(cfg.Model)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	opts := []postag.Option{postag.WithBeamSize(cfg.BeamSize)}
	if cfg.Lexicon != "" {
		lexicon, err := ngram.Load(cfg.Lexicon)
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}
		opts = append(opts, postag.WithContextGenerator(postag.NewContextGen(lexicon)))
	}

	t, err := postag.New(model, opts...)
	if err != nil {
		return err
	}

	tagLock.Lock()
	tagger = t
	tagLock.Unlock()
	log.Printf("Engine ready: %d outcomes, beam %d", model.NumOutcomes(), cfg.BeamSize)
	return nil
}

type tagRequest struct {
	Text   string   `json:"text,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
}

type tagResponse struct {
	Tokens []string  `json:"tokens"`
	Tags   []string  `json:"tags"`
	Probs  []float64 `json:"probs"`
}

func handleTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	tokens := req.Tokens
	if len(tokens) == 0 {
		tokens = tokenizer.Tokenize(req.Text)
	}

	tagLock.RLock()
	t := tagger
	tagLock.RUnlock()

	tags, probs, err := t.Tag(tokens)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, beam.ErrNoValidSequence) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tagResponse{Tokens: tokens, Tags: tags, Probs: probs})
}

func handleReload(w http.ResponseWriter, r *http.Request) {
	if err := reloadEngine(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Fprintln(w, "reloaded")
}
