package config

const (
	defaultProjectsRoot      = "~/.local/share/inkwell/projects"
	defaultLogDir            = "~/.local/share/inkwell/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "anthropic/claude-sonnet-4.5"
	defaultLLMReferer        = "https://github.com/inkwell-cli/inkwell"
	defaultLLMTitle          = "Inkwell"
	defaultLLMTimeoutSeconds = 300
	defaultExportAuthor      = "Anonymous"
	defaultExportLanguage    = "en"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsRoot: defaultProjectsRoot,
			LogDir:       defaultLogDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Export: Export{
			Author:   defaultExportAuthor,
			Language: defaultExportLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
