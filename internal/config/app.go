package config

const defaultTransactionsLimit = 100

type AppConfig struct {
	TransactionsPageSize uint64 `yaml:"transactions-limit"`
	JaegerAddr           string `yaml:"jaeger-agent"`
}

// TransactionsLimit caps how many recent transactions a dashboard load pulls
// into memory.
func (s *AppConfig) TransactionsLimit() uint64 {
	if s.TransactionsPageSize == 0 {
		return defaultTransactionsLimit
	}
	return s.TransactionsPageSize
}

func (s *AppConfig) JaegerAgent() string {
	return s.JaegerAddr
}
