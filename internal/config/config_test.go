package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnNew_ShouldParseAllSections(t *testing.T) {
	path := writeConfig(t, `
app:
  data-file: /tmp/exp.json
  timezone: Europe/Moscow
postgres:
  host: localhost
  db: expenses
  username: user
  password: secret
memcached:
  hosts: ["127.0.0.1:11211"]
metrics:
  pushgateway: http://localhost:9091
jaeger:
  agent: localhost:6831
  service: tracker
`)

	conf, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/exp.json", conf.App().DataFile())
	assert.Equal(t, "Europe/Moscow", conf.App().Location().String())

	assert.True(t, conf.Postgres().Enabled())
	assert.Equal(t, "localhost", conf.Postgres().Host())
	assert.Equal(t, "expenses", conf.Postgres().Database())
	assert.Equal(t, "user", conf.Postgres().Username())
	assert.Equal(t, "secret", conf.Postgres().Password())
	assert.Equal(t, "disable", conf.Postgres().SSLMode())

	assert.Equal(t, []string{"127.0.0.1:11211"}, conf.Memcached().Hosts())
	assert.True(t, conf.Metrics().Enabled())
	assert.Equal(t, defaultMetricsJob, conf.Metrics().Job())
	assert.Equal(t, "tracker", conf.Jaeger().ServiceName())
}

func Test_OnNew_MissingFile_ShouldUseDefaults(t *testing.T) {
	conf, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaultDataFile, conf.App().DataFile())
	assert.Equal(t, time.UTC, conf.App().Location())
	assert.False(t, conf.Postgres().Enabled())
	assert.False(t, conf.Memcached().Enabled())
	assert.False(t, conf.Metrics().Enabled())
	assert.False(t, conf.Jaeger().Enabled())
	assert.Equal(t, defaultServiceName, conf.Jaeger().ServiceName())
}

func Test_OnNew_MalformedFile_ShouldFail(t *testing.T) {
	path := writeConfig(t, "app: [unterminated")

	_, err := New(path)
	assert.Error(t, err)
}

func Test_OnLocation_UnknownZone_ShouldFallBackToUTC(t *testing.T) {
	app := AppConfig{Timezone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, app.Location())
}
