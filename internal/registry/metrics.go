package registry

import "fmt"

// MetricConfig names one metric and whether it is the headline metric.
type MetricConfig struct {
	Name      string
	IsPrimary bool
}

// TaskMetricConfig is the metric set exposed for one task.
type TaskMetricConfig struct {
	TaskName    string
	DatasetPath string
	Metrics     []MetricConfig
	ScoringMode ScoringMode
}

// Primary returns the primary metric name, or "" when none is marked.
func (c TaskMetricConfig) Primary() string {
	for _, metric := range c.Metrics {
		if metric.IsPrimary {
			return metric.Name
		}
	}
	return ""
}

// MetricNames returns the metric names in order.
func (c TaskMetricConfig) MetricNames() []string {
	names := make([]string, 0, len(c.Metrics))
	for _, metric := range c.Metrics {
		names = append(names, metric.Name)
	}
	return names
}

func (c TaskMetricConfig) check() error {
	seen := make(map[string]struct{}, len(c.Metrics))
	primaries := 0
	for _, metric := range c.Metrics {
		if _, ok := seen[metric.Name]; ok {
			return fmt.Errorf("duplicate metric %q", metric.Name)
		}
		seen[metric.Name] = struct{}{}
		if metric.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return fmt.Errorf("%d primary metrics", primaries)
	}
	if primaries == 0 && len(c.Metrics) > 0 {
		return fmt.Errorf("no primary metric")
	}
	return nil
}

// metricProfile replaces a task's own metric list.
type metricProfile struct {
	metrics []string
	primary string
}

// metricOverrides maps task names to fixed metric profiles.
var metricOverrides = map[string]metricProfile{
	"conv_helpfulness_core": {
		metrics: []string{
			"helpfulness_score",
			"instruction_following_score",
			"safety_score",
			"overall_judge_score",
		},
		primary: "overall_judge_score",
	},
}

// MetricsFor derives the metric config for a task definition.
func MetricsFor(def TaskDefinition) TaskMetricConfig {
	names := def.PrimaryMetrics
	primary := ""
	if len(names) > 0 {
		primary = names[0]
	}
	if profile, ok := metricOverrides[def.TaskName]; ok {
		names = profile.metrics
		primary = profile.primary
	}

	metrics := make([]MetricConfig, 0, len(names))
	marked := false
	for _, name := range names {
		isPrimary := !marked && primary != "" && name == primary
		marked = marked || isPrimary
		metrics = append(metrics, MetricConfig{Name: name, IsPrimary: isPrimary})
	}
	return TaskMetricConfig{
		TaskName:    def.TaskName,
		DatasetPath: def.DatasetPath,
		Metrics:     metrics,
		ScoringMode: def.ScoringMode,
	}
}

// BuildTable derives metric configs for every definition, keyed by task name.
func BuildTable(defs []TaskDefinition) map[string]TaskMetricConfig {
	table := make(map[string]TaskMetricConfig, len(defs))
	for _, def := range defs {
		table[def.TaskName] = MetricsFor(def)
	}
	return table
}
