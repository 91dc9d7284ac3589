package config

const defaultMetricsJob = "expense-tracker"

type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway"`
	JobName        string `yaml:"job"`
}

func (s *MetricsConfig) Enabled() bool {
	return s.PushgatewayURL != ""
}

func (s *MetricsConfig) Pushgateway() string {
	return s.PushgatewayURL
}

func (s *MetricsConfig) Job() string {
	if s.JobName == "" {
		return defaultMetricsJob
	}
	return s.JobName
}
