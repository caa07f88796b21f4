package config

// Config is the demo application's configuration document.
type Config struct {
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	PageSize int    `yaml:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	People   []Seed `yaml:"people,omitempty" validate:"omitempty,dive"`
}

// Seed is one dataset row loaded from configuration.
type Seed struct {
	Name   string `yaml:"name" validate:"required,min=1,max=100"`
	Email  string `yaml:"email" validate:"required,email"`
	Age    int    `yaml:"age" validate:"required,min=1,max=150"`
	City   string `yaml:"city,omitempty"`
	Status string `yaml:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Theme:    "dark",
		PageSize: 5,
		LogLevel: "info",
	}
}

// applyDefaults fills unset fields after decoding.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.PageSize == 0 {
		c.PageSize = defaults.PageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
