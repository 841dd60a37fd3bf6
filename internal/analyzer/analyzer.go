package analyzer

import (
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/spanish"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Token is a tagged token produced by the tagger pipeline.
type Token struct {
	Text string
	Tag  string
}

// Entity is a labeled span produced by the NER pipeline.
type Entity struct {
	Text  string
	Label string
}

// Pipeline abstracts the external tokenizer/tagger/NER collaborator. The
// toolkit treats it as an opaque service: tokenization, part-of-speech tags,
// sentence segmentation and entity labels all come from here.
type Pipeline interface {
	Sentences(text string) ([]string, error)
	Tokens(text string) ([]Token, error)
	Entities(text string) ([]Entity, error)
}

// prosePipeline backs Pipeline with the prose document pipeline.
type prosePipeline struct{}

// NewProsePipeline returns the default prose-backed pipeline.
func NewProsePipeline() Pipeline {
	return prosePipeline{}
}

func (prosePipeline) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func (prosePipeline) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, Token{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}

func (prosePipeline) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

// Config holds the analyzer knobs. Zero values are replaced by defaults.
type Config struct {
	TopWords         int `yaml:"top_words"`         // entries per word category
	TopPhrases       int `yaml:"top_phrases"`       // entries in the phrase category
	SummarySentences int `yaml:"summary_sentences"` // sentences kept by the summarizer
}

func (c *Config) applyDefaults() {
	if c.TopWords <= 0 {
		c.TopWords = 5
	}
	if c.TopPhrases <= 0 {
		c.TopPhrases = 6
	}
	if c.SummarySentences <= 0 {
		c.SummarySentences = 3
	}
}

// Analyzer implements the text-analysis operations on top of an injected
// tagger pipeline. Safe for repeated use from a single goroutine; the pipeline
// is only constructed once.
type Analyzer struct {
	cfg      Config
	pipeline Pipeline

	pipeOnce sync.Once
}

// New creates an Analyzer. A nil pipeline selects the prose-backed default,
// constructed lazily on first use.
func New(cfg Config, pipeline Pipeline) *Analyzer {
	cfg.applyDefaults()
	return &Analyzer{cfg: cfg, pipeline: pipeline}
}

func (a *Analyzer) pipe() Pipeline {
	a.pipeOnce.Do(func() {
		if a.pipeline == nil {
			a.pipeline = NewProsePipeline()
		}
	})
	return a.pipeline
}

var caseFolder = cases.Fold()

// fold normalizes a string for comparison: NFKC normalization plus case
// folding, the robust lowercase for multilingual text.
func fold(s string) string {
	return caseFolder.String(norm.NFKC.String(s))
}

// stem reduces a folded word to its Spanish snowball stem, the toolkit's
// stand-in for a lemma.
func stem(word string) string {
	return spanish.Stem(word, true)
}
