package spacedrep

// DefaultEaseFactor is the ease factor assigned to a newly added verse.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the floor the ease factor is clamped to after every
// transition. Below this the interval growth would stall permanently.
const MinEaseFactor = 1.3

// FirstIntervalDays is the interval after the first successful review
// (and after any lapse).
const FirstIntervalDays = 1

// SecondIntervalDays is the interval after the second consecutive
// successful review. From the third onward the interval is multiplied
// by the ease factor.
const SecondIntervalDays = 6

// MasteryIntervalDays is the interval beyond which a verse counts as
// mastered for display and statistics.
const MasteryIntervalDays = 30

// MinQuality and MaxQuality bound the 0-5 recall rating scale.
const (
	MinQuality = 0
	MaxQuality = 5
)

// PassingQuality is the lowest rating that counts as a successful
// recall. Anything below it is a lapse.
const PassingQuality = 3
