package registry

import (
	"fmt"
	"path/filepath"
)

// ScoringMode selects how a conversation task is scored.
type ScoringMode string

const (
	ScoringDeterministic ScoringMode = "deterministic"
	ScoringJudge         ScoringMode = "judge"
)

// MultiTurnTracesPath is the trace file shared by the conversation tasks,
// relative to the dataset root.
var MultiTurnTracesPath = filepath.Join("reasoning-model-trainer", "examples", "multi_turn_traces_eval.jsonl")

// TaskDefinition describes one conversation evaluation task.
type TaskDefinition struct {
	TaskName       string
	Description    string
	DatasetPath    string
	PrimaryMetrics []string
	ScoringMode    ScoringMode
}

// catalog lists the built-in tasks. Append new definitions here.
var catalog = []TaskDefinition{
	{
		TaskName:       "conv_router_intent",
		Description:    "Conversation intent routing accuracy over multi_turn_traces_eval.",
		DatasetPath:    MultiTurnTracesPath,
		PrimaryMetrics: []string{"intent_accuracy", "decision_accuracy"},
		ScoringMode:    ScoringDeterministic,
	},
	{
		TaskName:       "conv_tool_routing",
		Description:    "Conversation tool routing and call structure quality.",
		DatasetPath:    MultiTurnTracesPath,
		PrimaryMetrics: []string{"tool_success_rate", "format_valid"},
		ScoringMode:    ScoringDeterministic,
	},
	{
		TaskName:       "conv_helpfulness_core",
		Description:    "Judge-based conversation helpfulness and overall quality.",
		DatasetPath:    MultiTurnTracesPath,
		PrimaryMetrics: []string{"overall_judge_score"},
		ScoringMode:    ScoringJudge,
	},
}

// Registry holds task definitions and their derived metric configs.
// It is built once and never mutated.
type Registry struct {
	tasks   []TaskDefinition
	metrics map[string]TaskMetricConfig
}

// New builds the registry from the built-in catalog with dataset paths
// resolved against root. An empty root leaves paths relative.
func New(root string) *Registry {
	defs := make([]TaskDefinition, 0, len(catalog))
	for _, def := range catalog {
		def = cloneDefinition(def)
		if root != "" && !filepath.IsAbs(def.DatasetPath) {
			def.DatasetPath = filepath.Join(root, def.DatasetPath)
		}
		defs = append(defs, def)
	}
	reg, err := newRegistry(defs)
	if err != nil {
		panic(fmt.Sprintf("registry: built-in catalog: %v", err))
	}
	return reg
}

func newRegistry(defs []TaskDefinition) (*Registry, error) {
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if def.TaskName == "" {
			return nil, fmt.Errorf("task name is required")
		}
		if _, ok := seen[def.TaskName]; ok {
			return nil, fmt.Errorf("duplicate task %q", def.TaskName)
		}
		seen[def.TaskName] = struct{}{}
	}
	table := BuildTable(defs)
	for name, cfg := range table {
		if err := cfg.check(); err != nil {
			return nil, fmt.Errorf("task %q: %w", name, err)
		}
	}
	return &Registry{tasks: defs, metrics: table}, nil
}

// List returns the task definitions in catalog order.
func (r *Registry) List() []TaskDefinition {
	out := make([]TaskDefinition, 0, len(r.tasks))
	for _, def := range r.tasks {
		out = append(out, cloneDefinition(def))
	}
	return out
}

// Get returns the task definition with the given name, if present.
func (r *Registry) Get(name string) (TaskDefinition, bool) {
	for _, def := range r.tasks {
		if def.TaskName == name {
			return cloneDefinition(def), true
		}
	}
	return TaskDefinition{}, false
}

// Metrics returns the derived metric config for a task name.
func (r *Registry) Metrics(name string) (TaskMetricConfig, bool) {
	cfg, ok := r.metrics[name]
	cfg.Metrics = append([]MetricConfig(nil), cfg.Metrics...)
	return cfg, ok
}

func cloneDefinition(def TaskDefinition) TaskDefinition {
	def.PrimaryMetrics = append([]string(nil), def.PrimaryMetrics...)
	return def
}
