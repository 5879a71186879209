package align

import "errors"

// ErrInvalidScoring is the base sentinel for every scoring-construction
// failure. Constructors wrap it with the offending parameter, so callers
// can match the family with errors.Is(err, ErrInvalidScoring) or inspect
// the message for the detail.
var ErrInvalidScoring = errors.New("align: invalid scoring")
