package config

const defaultServiceName = "expense-tracker"

type JaegerConfig struct {
	AgentHostPort string `yaml:"agent"`
	Service       string `yaml:"service"`
}

func (s *JaegerConfig) Enabled() bool {
	return s.AgentHostPort != ""
}

func (s *JaegerConfig) Agent() string {
	return s.AgentHostPort
}

func (s *JaegerConfig) ServiceName() string {
	if s.Service == "" {
		return defaultServiceName
	}
	return s.Service
}
