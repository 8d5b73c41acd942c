package datefield

// Config holds the environment-driven settings of a Field.
type Config struct {
	Mode Mode `env:"DOB_VALIDATE_MODE" envDefault:"change"` // Mode is "change" or "submit".
}

// Options converts the config into Field options.
func (c Config) Options() []Option {
	return []Option{WithMode(c.Mode)}
}
