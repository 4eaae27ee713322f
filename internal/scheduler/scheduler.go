package scheduler

import (
	"log/slog"
	"time"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/problemgen"
)

// Request carries the learner state a pick depends on.
type Request struct {
	Level int
	// ReviewMode draws fresh facts from the whole catalog.
	ReviewMode bool
	// Mistakes is consumed: a scheduled mistake is popped from it.
	Mistakes *MistakeQueue
	Mastery  *mastery.Table
	Now      time.Time
}

// Scheduler picks the next fact to practice.
type Scheduler struct {
	bank   *facts.Bank
	rng    problemgen.Rand
	gen    *problemgen.Generator
	cfg    Config
	logger *slog.Logger
}

// New creates a scheduler over bank.
func New(bank *facts.Bank, rng problemgen.Rand, cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		bank:   bank,
		rng:    rng,
		gen:    problemgen.NewGenerator(rng, cfg.MultipleChoiceRate),
		cfg:    cfg,
		logger: logger,
	}
}

// Next returns the next challenge. Precedence is the mistakes queue head,
// then the earliest due record, then a fresh draw for the level.
func (s *Scheduler) Next(req Request) problemgen.Challenge {
	if req.Mistakes != nil {
		if sig, ok := req.Mistakes.Pop(); ok {
			f, err := s.bank.Resolve(sig)
			if err == nil {
				return s.gen.Build(f, problemgen.SourceMistake)
			}
			s.logger.Warn("dropping unresolvable mistake", "signature", sig, "error", err)
		}
	}

	if req.Mastery != nil {
		for _, r := range req.Mastery.Due(req.Now) {
			f, err := s.bank.Resolve(r.Signature)
			if err != nil {
				s.logger.Warn("skipping unresolvable due record", "signature", r.Signature, "error", err)
				continue
			}
			return s.gen.Build(f, problemgen.SourceDue)
		}
	}

	f, source := s.draw(req.Level, req.ReviewMode)
	return s.gen.Build(f, source)
}

func (s *Scheduler) draw(level int, reviewMode bool) (facts.Fact, problemgen.Source) {
	if reviewMode {
		return s.pick(s.bank.All()), problemgen.SourceReview
	}

	if prior := s.bank.Below(level); len(prior) > 0 && s.rng.Float64() < s.cfg.PriorRatio(level) {
		return s.pick(prior), problemgen.SourcePrior
	}

	pool := s.bank.ByLevel(level)
	if len(pool) == 0 {
		s.logger.Debug("empty level pool, using full catalog", "level", level)
		pool = s.bank.All()
	}
	return s.pick(pool), problemgen.SourceFresh
}

func (s *Scheduler) pick(pool []facts.Fact) facts.Fact {
	return pool[s.rng.IntN(len(pool))]
}
