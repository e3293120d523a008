package service

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/badpassword/badpassword-go/internal/generator"
	"github.com/badpassword/badpassword-go/internal/model"
	"github.com/badpassword/badpassword-go/internal/repository"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	dict repository.Dictionary
	now  func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a GeneratorService.
type Option func(*GeneratorService)

// WithRand replaces the random source, mostly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *GeneratorService) { s.rng = rng }
}

// WithClock replaces the clock the current year is read from.
func WithClock(now func() time.Time) Option {
	return func(s *GeneratorService) { s.now = now }
}

// NewGeneratorService creates a new GeneratorService over a loaded dictionary.
func NewGeneratorService(dict repository.Dictionary, opts ...Option) *GeneratorService {
	s := &GeneratorService{
		dict: dict,
		now:  time.Now,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces a password based on the given options.
func (s *GeneratorService) Generate(opts model.Options) (model.Result, error) {
	year := s.now().Year()

	s.mu.Lock()
	res, err := generator.Generate(s.dict, opts, s.rng, year)
	s.mu.Unlock()
	if err != nil {
		return model.Result{}, err
	}

	slog.Debug("password generated",
		"base", res.Base,
		"suffix", res.Suffix,
		"caps", opts.Caps,
		"exclamation", opts.Exclamation,
	)
	return res, nil
}
