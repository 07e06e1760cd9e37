package ncnews

import (
	"errors"
	"fmt"
	"math"
)

// VoteInput is the body of an article or comment vote update.
type VoteInput struct {
	IncVotes *float64 `mapstructure:"inc_votes"`
}

// NewVoteInput returns the signed vote delta held in raw. inc_votes must be a
// JSON number without a fractional part.
func NewVoteInput(raw map[string]interface{}) (int64, error) {
	in := &VoteInput{}
	if err := decodeInput(raw, in); err != nil {
		return 0, InvalidInput(err)
	}

	if in.IncVotes == nil {
		return 0, InvalidInput(errors.New("inc_votes is required"))
	}

	v := *in.IncVotes
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, InvalidInput(fmt.Errorf("inc_votes must be an integer, got %v", v))
	}

	return int64(v), nil
}
