package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsForHelpfulnessOverride(t *testing.T) {
	for _, primary := range [][]string{
		{"overall_judge_score"},
		{"something_else", "other"},
		nil,
	} {
		cfg := MetricsFor(TaskDefinition{
			TaskName:       "conv_helpfulness_core",
			PrimaryMetrics: primary,
			ScoringMode:    ScoringJudge,
		})
		require.Equal(t, []MetricConfig{
			{Name: "helpfulness_score"},
			{Name: "instruction_following_score"},
			{Name: "safety_score"},
			{Name: "overall_judge_score", IsPrimary: true},
		}, cfg.Metrics)
		require.Equal(t, "overall_judge_score", cfg.Primary())
	}
}

func TestMetricsForUsesPrimaryMetricsVerbatim(t *testing.T) {
	def := TaskDefinition{
		TaskName:       "conv_router_intent",
		DatasetPath:    "traces.jsonl",
		PrimaryMetrics: []string{"intent_accuracy", "decision_accuracy"},
		ScoringMode:    ScoringDeterministic,
	}
	cfg := MetricsFor(def)
	require.Equal(t, "conv_router_intent", cfg.TaskName)
	require.Equal(t, "traces.jsonl", cfg.DatasetPath)
	require.Equal(t, ScoringDeterministic, cfg.ScoringMode)
	require.Equal(t, def.PrimaryMetrics, cfg.MetricNames())
	require.Equal(t, "intent_accuracy", cfg.Primary())
	require.False(t, cfg.Metrics[1].IsPrimary)
}

func TestMetricsForEmptyMetricsHasNoPrimary(t *testing.T) {
	cfg := MetricsFor(TaskDefinition{TaskName: "bare", ScoringMode: ScoringDeterministic})
	require.Empty(t, cfg.Metrics)
	require.Equal(t, "", cfg.Primary())
	require.NoError(t, cfg.check())
}

func TestBuildTableCoversCatalog(t *testing.T) {
	reg := New("")
	table := BuildTable(reg.List())
	require.Len(t, table, 3)
	for _, def := range reg.List() {
		cfg, ok := table[def.TaskName]
		require.True(t, ok, def.TaskName)
		require.NoError(t, cfg.check())
	}
	require.Equal(t, "tool_success_rate", table["conv_tool_routing"].Primary())
	require.Len(t, table["conv_helpfulness_core"].Metrics, 4)
}

func TestMetricsForMarksOnlyFirstPrimary(t *testing.T) {
	cfg := MetricsFor(TaskDefinition{
		TaskName:       "repeats",
		PrimaryMetrics: []string{"a", "b", "a"},
		ScoringMode:    ScoringDeterministic,
	})
	require.Equal(t, []MetricConfig{
		{Name: "a", IsPrimary: true},
		{Name: "b"},
		{Name: "a"},
	}, cfg.Metrics)
	require.Equal(t, "a", cfg.Primary())
}
