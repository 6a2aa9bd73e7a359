package rewards

import "errors"

var (
	// ErrEpochAlreadyExists is returned when create_rewards_epoch targets an
	// index that already has a recorded epoch.
	ErrEpochAlreadyExists = errors.New("rewards: epoch already exists")
	// ErrEpochNotFound is returned when claim_rewards references an epoch
	// index with no recorded epoch.
	ErrEpochNotFound = errors.New("rewards: epoch not found")
	// ErrAlreadyClaimed is returned when a claim record already exists for
	// the (epoch, user) pair.
	ErrAlreadyClaimed = errors.New("rewards: reward already claimed")
	// ErrClaimExceedsEpochTotal is returned when EnforceEpochTotals is set
	// and a claim would push the running claimed-sum past the epoch's
	// recorded total.
	ErrClaimExceedsEpochTotal = errors.New("rewards: claim would exceed epoch total")
)
