package scheduler

// Config tunes how fresh facts are drawn.
type Config struct {
	// PriorRatioBase, PriorRatioStep and PriorRatioMax shape the chance of
	// drawing a fact from an earlier level:
	//   min(max, base + step*(level-1)), and 0 at level 1.
	PriorRatioBase float64
	PriorRatioStep float64
	PriorRatioMax  float64

	// MultipleChoiceRate is the share of challenges answered by picking
	// one of four choices.
	MultipleChoiceRate float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		PriorRatioBase:     0.1,
		PriorRatioStep:     0.04,
		PriorRatioMax:      0.5,
		MultipleChoiceRate: 0.75,
	}
}

// PriorRatio returns the probability of a prior-level draw at level.
func (c Config) PriorRatio(level int) float64 {
	if level <= 1 {
		return 0
	}
	return min(c.PriorRatioMax, c.PriorRatioBase+c.PriorRatioStep*float64(level-1))
}
