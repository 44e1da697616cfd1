package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainConfig is the domain prefix for configuration hashes.
// The version suffix allows a future change of the hashed field set.
const DomainConfig = "mcsampling/config/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ConfigHash computes a content-addressed identity for a configuration.
// Two runs with equal hashes and equal seeds produce identical trajectories.
func ConfigHash(cfg SimulationConfig) (string, error) {
	obj := map[string]any{
		"iterations":       cfg.Iterations,
		"max_displacement": cfg.MaxDisplacement,
		"initial_position": cfg.InitialPosition,
		"mass":             cfg.Mass,
		"frequency":        cfg.Frequency,
		"beta":             cfg.Beta,
		"domain":           cfg.Domain,
		"bins":             cfg.Bins,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ConfigHash: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainConfig, canonical), nil
}
