package vault

func containsKey(set [][32]byte, key [32]byte) bool {
	for _, k := range set {
		if k == key {
			return true
		}
	}
	return false
}

// RequireFreezeAdmin fails unless signer is a member of cfg's freeze
// administrator set.
func RequireFreezeAdmin(cfg *Config, signer [32]byte) error {
	if !containsKey(cfg.FreezeAdmins, signer) {
		return ErrUnauthorizedFreeze
	}
	return nil
}

// RequireRewardsAdmin fails unless signer is a member of cfg's rewards
// administrator set.
func RequireRewardsAdmin(cfg *Config, signer [32]byte) error {
	if !containsKey(cfg.RewardsAdmins, signer) {
		return ErrUnauthorizedRewards
	}
	return nil
}

// RequireNotPaused fails while cfg.Paused is set.
func RequireNotPaused(cfg *Config) error {
	if cfg.Paused {
		return ErrPaused
	}
	return nil
}

// validateAdminSet enforces the bound and uniqueness rule shared by both
// administrator lists.
func validateAdminSet(admins [][32]byte) error {
	if len(admins) > MaxAdmins {
		return ErrTooManyAdministrators
	}
	seen := make(map[[32]byte]struct{}, len(admins))
	for _, a := range admins {
		if _, dup := seen[a]; dup {
			return ErrDuplicateAdministrator
		}
		seen[a] = struct{}{}
	}
	return nil
}
