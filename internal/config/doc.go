// Package config loads and validates the TOML configuration for inkwell.
//
// Configuration is resolved from an explicit --config path when given,
// otherwise from ~/.config/inkwell/config.toml. A missing file is not an
// error: defaults apply, and the LLM API key may arrive via the
// INKWELL_API_KEY environment variable. All path values support a leading ~
// and are normalized to absolute paths at load time.
package config
