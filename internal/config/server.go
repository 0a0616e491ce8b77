package config

type ServerConfig struct {
	ListenAddr  string   `yaml:"addr"`
	MetricsAddr string   `yaml:"metrics-addr"`
	Origins     []string `yaml:"cors-origins"`
}

func (s *ServerConfig) Addr() string {
	if s.ListenAddr == "" {
		return ":8080"
	}
	return s.ListenAddr
}

func (s *ServerConfig) Metrics() string {
	if s.MetricsAddr == "" {
		return ":9100"
	}
	return s.MetricsAddr
}

func (s *ServerConfig) CORSOrigins() []string {
	return s.Origins
}
