package config

import (
	"fmt"
	"regexp"
)

var semverRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !semverRe.MatchString(c.Consent.CurrentVersion) {
		return fmt.Errorf("consent.current_version must look like X.Y.Z (got %q)", c.Consent.CurrentVersion)
	}
	if c.Consent.DeletionGracePeriod < 0 {
		return fmt.Errorf("consent.deletion_grace_period must be >= 0 (got %v)", c.Consent.DeletionGracePeriod)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.RateLimit.AIRequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.ai_requests_per_minute must be > 0 (got %d)", c.RateLimit.AIRequestsPerMinute)
	}

	if c.Erasure.MaxBatchSize <= 0 || c.Erasure.MaxBatchSize > 500 {
		return fmt.Errorf("erasure.max_batch_size must be in 1..500 (got %d)", c.Erasure.MaxBatchSize)
	}

	return nil
}

// validate checks AI settings. Missing credentials are allowed: AI
// operations then report a failed precondition at call time.
func (a *AIConfig) validate() error {
	if a.Backend != AIBackendGemini && a.Backend != AIBackendVertex {
		return fmt.Errorf("backend must be %q or %q (got %q)", AIBackendGemini, AIBackendVertex, a.Backend)
	}
	if a.AnalysisTemperature < 0 || a.AnalysisTemperature > 2 {
		return fmt.Errorf("analysis_temperature must be in [0,2] (got %v)", a.AnalysisTemperature)
	}
	if a.GenerativeTemperature < 0 || a.GenerativeTemperature > 2 {
		return fmt.Errorf("generative_temperature must be in [0,2] (got %v)", a.GenerativeTemperature)
	}
	if a.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", a.MaxOutputTokens)
	}
	if a.RequestTimeout <= 0 || a.BatchTimeout <= 0 {
		return fmt.Errorf("request_timeout and batch_timeout must be > 0")
	}
	if a.EmbeddingSubBatchSize <= 0 {
		return fmt.Errorf("embedding_sub_batch_size must be > 0 (got %d)", a.EmbeddingSubBatchSize)
	}
	if a.MaxBatchTexts <= 0 {
		return fmt.Errorf("max_batch_texts must be > 0 (got %d)", a.MaxBatchTexts)
	}
	if a.MaxInputChars <= 0 {
		return fmt.Errorf("max_input_chars must be > 0 (got %d)", a.MaxInputChars)
	}
	return nil
}
