package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	agent string
}

func (c testConfig) Enabled() bool       { return c.agent != "" }
func (c testConfig) Agent() string       { return c.agent }
func (c testConfig) ServiceName() string { return "expense-tracker-test" }

func Test_OnInit_Disabled_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})
	require.NoError(t, err)

	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
