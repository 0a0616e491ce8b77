package config

// TelegramConfig is optional; an empty token disables overspend alerts.
type TelegramConfig struct {
	ApiToken string `yaml:"token"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}
