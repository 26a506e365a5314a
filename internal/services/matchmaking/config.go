package matchmaking

import (
	"kundali/internal/core/milan"
	"kundali/internal/platform/config"
)

// Config for the matchmaking service
type Config struct {
	// Workers caps the batch scoring fan-out
	Workers int
	// RejectPolicy decides where early-rejected candidates land
	RejectPolicy milan.RejectPolicy
	// RejectSameNadi enables the stock same-nadi early rejection
	RejectSameNadi bool
	// MinGuna drops ranked pairs scoring below it from batch reports; 0 keeps all
	MinGuna int
}

// ConfigFromEnv reads the CORE_MATCH_* namespace
func ConfigFromEnv(root config.Conf) Config {
	c := root.Prefix("CORE_MATCH_")
	return Config{
		Workers:        c.MayInt("WORKERS", 4),
		RejectPolicy:   milan.ParseRejectPolicy(c.MayEnum("REJECT_POLICY", "exclude", "exclude", "rank_last")),
		RejectSameNadi: c.MayBool("REJECT_SAME_NADI", false),
		MinGuna:        c.MayInt("MIN_GUNA", 0),
	}
}
