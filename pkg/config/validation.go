package config

// ValidationConfig configures the strict validators used by the CLI.
type ValidationConfig struct {
	PasswordMinLength int      `yaml:"password_min_length"`
	URLSchemes        []string `yaml:"url_schemes"`
}

func defaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		PasswordMinLength: 8,
		URLSchemes:        []string{"http", "https"},
	}
}

func loadValidationConfig(base ValidationConfig) ValidationConfig {
	return ValidationConfig{
		PasswordMinLength: getEnvInt("FORMKIT_PASSWORD_MIN_LENGTH", base.PasswordMinLength),
		URLSchemes:        getEnvStringSlice("FORMKIT_URL_SCHEMES", base.URLSchemes),
	}
}

func (c ValidationConfig) validate() error {
	if c.PasswordMinLength <= 0 {
		return invalid("validation.password_min_length", "password_min_length must be > 0, got %d", c.PasswordMinLength)
	}
	if len(c.URLSchemes) == 0 {
		return invalid("validation.url_schemes", "at least one url scheme is required")
	}
	return nil
}
