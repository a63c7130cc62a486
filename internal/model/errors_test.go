package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("claim 7: %w", ErrAlreadyClaimed)
	assert.Equal(t, "ALREADY_CLAIMED", ErrorCode(wrapped))
	assert.Equal(t, "INCORRECT_FEE", ErrorCode(ErrIncorrectFee))
	assert.Equal(t, "UNAUTHORIZED", ErrorCode(ErrSessionNotFound))
	assert.Equal(t, CodeInternal, ErrorCode(errors.New("boom")))
}

func TestErrorCodesDistinctForGameErrors(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []error{ErrIncorrectFee, ErrNotOwner, ErrAlreadyClaimed, ErrNothingToClaim, ErrDisbursementFailed} {
		code := ErrorCode(err)
		assert.False(t, seen[code], code)
		seen[code] = true
	}
}

func TestPrizeTierString(t *testing.T) {
	for _, tier := range []PrizeTier{TierNone, TierFirst, TierSecond, TierThird} {
		parsed, ok := ParsePrizeTier(tier.String())
		assert.True(t, ok)
		assert.Equal(t, tier, parsed)
	}
	_, ok := ParsePrizeTier("JACKPOT")
	assert.False(t, ok)
}
