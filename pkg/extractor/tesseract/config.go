package tesseract

type Config struct {
	binary   string
	language string
}

type Option func(*Config)

func WithBinary(binary string) Option {
	return func(c *Config) {
		c.binary = binary
	}
}

func WithLanguage(language string) Option {
	return func(c *Config) {
		c.language = language
	}
}
