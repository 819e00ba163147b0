package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged rolling. All rolls
// are logged at debug level with the distribution and the resulting sum.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that samples from src and logs each
// roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn delegates to the underlying Source, so a Roller can stand in
// anywhere a Source is expected.
func (r *Roller) Intn(n int) int {
	return r.src.Intn(n)
}

// Roll samples a sum from d and logs the result at debug level.
//
// Precondition: d must be valid.
// Postcondition: Return value is in [MinSum, MaxSum]; the roll is logged.
func (r *Roller) Roll(d Distribution) int {
	sum := RollSum(d, r.src)
	r.logger.Debug("dice roll",
		zap.Stringer("distribution", d),
		zap.Int("sum", sum),
	)
	return sum
}
