package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  transactions-limit: 50
server:
  addr: ":9090"
postgres:
  host: localhost
  db: fintrack
  username: fintrack
  password: secret
kafka:
  brokers: ["localhost:9092"]
  consumer-group: reporter
  refresh-topic: dashboard-refresh
memcached:
  hosts: ["localhost:11211"]
telegram:
  token: "123:abc"
`

func Test_OnValidFile_ShouldParseAllSections(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testYAML), 0o600))
	t.Setenv("CONFIG_FILE", file)

	conf, err := New()

	require.NoError(t, err)
	assert.Equal(t, uint64(50), conf.App().TransactionsLimit())
	assert.Equal(t, ":9090", conf.Server().Addr())
	assert.Equal(t, ":9100", conf.Server().Metrics())
	assert.Equal(t, "localhost", conf.Postgres().Host())
	assert.Equal(t, "disable", conf.Postgres().SSLMode())
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka().Brokers())
	assert.Equal(t, "dashboard-refresh", conf.Kafka().RefreshTopic())
	assert.Equal(t, []string{"localhost:11211"}, conf.Memcached().Hosts())
	assert.Equal(t, "123:abc", conf.Telegram().Token())
}

func Test_OnMissingFile_ShouldFail(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := New()

	assert.Error(t, err)
}

func Test_OnDefaults_ShouldFillTransactionsLimit(t *testing.T) {
	cfg := AppConfig{}
	assert.Equal(t, uint64(100), cfg.TransactionsLimit())
}
