package config

// MemcachedConfig is optional; with no hosts the dashboard cache is skipped
// and every read recomputes.
type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}
