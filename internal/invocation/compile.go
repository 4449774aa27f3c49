package invocation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"evalrunner/internal/jobspec"
)

// Subcommand is the engine verb every invocation starts with.
const Subcommand = "eval"

// ProviderOpenAICompatible routes base_url through OPENAI_API_BASE.
const ProviderOpenAICompatible = "openai_compatible"

// Environment variables set for the engine.
const (
	EnvOpenAIAPIBase    = "OPENAI_API_BASE"
	EnvBackendBaseURL   = "EVALUATOR_BACKEND_BASE_URL"
	EnvTemperature      = "EVALUATOR_TEMPERATURE"
	EnvMaxNewTokens     = "EVALUATOR_MAX_NEW_TOKENS"
	EnvTopP             = "EVALUATOR_TOP_P"
	EnvTaskParamsPrefix = "EVALUATOR_TASK_PARAMS__"
	EnvScoringMode      = "EVALUATOR_SCORING_MODE"
	EnvScoringConfig    = "EVALUATOR_SCORING_CONFIG"
	EnvBenchmarkPackID  = "EVALUATOR_BENCHMARK_PACK_ID"
	EnvRunName          = "EVALUATOR_RUN_NAME"
)

// Invocation is the argument list and environment handed to the engine.
type Invocation struct {
	// Args excludes the engine binary itself.
	Args []string
	// Overlay holds only the variables set from the job.
	Overlay Env
	// Env is the inherited base with Overlay applied.
	Env Env
}

// Compile maps a validated job onto an engine invocation. base is the
// inherited environment snapshot; it is copied, never modified.
func Compile(job jobspec.JobSpec, base Env) Invocation {
	args := []string{Subcommand}
	overlay := Env{}

	backend := job.Backend
	args = append(args, "--model", backend.ModelName)
	if backend.Provider != "" {
		args = append(args, "--provider", backend.Provider)
	}
	if backend.ParallelCallsCount != nil {
		args = append(args, "--num-workers", strconv.Itoa(*backend.ParallelCallsCount))
	}
	if backend.BaseURL != "" {
		if backend.Provider == ProviderOpenAICompatible {
			overlay[EnvOpenAIAPIBase] = backend.BaseURL
		} else {
			overlay[EnvBackendBaseURL] = backend.BaseURL
		}
	}

	if gen := job.Generation; gen != nil {
		if gen.Temperature != nil {
			overlay[EnvTemperature] = formatFloat(*gen.Temperature)
		}
		if gen.MaxNewTokens != nil {
			overlay[EnvMaxNewTokens] = strconv.Itoa(*gen.MaxNewTokens)
		}
		if gen.TopP != nil {
			overlay[EnvTopP] = formatFloat(*gen.TopP)
		}
	}

	for _, task := range job.Tasks {
		args = append(args, "--task", task.ID)
		if task.Fewshot != 0 {
			args = append(args, "--fewshot", strconv.Itoa(task.Fewshot))
		}
		if len(task.Params) > 0 {
			overlay[EnvTaskParamsPrefix+task.ID] = canonicalJSON(task.Params)
		}
	}

	if job.MaxSamples != nil {
		args = append(args, "--max-samples", strconv.Itoa(*job.MaxSamples))
	}
	seeds := job.NumFewshotSeeds
	if seeds == 0 {
		seeds = jobspec.DefaultNumFewshotSeeds
	}
	args = append(args, "--num-fewshot-seeds", strconv.Itoa(seeds))

	args = append(args, "--output-dir", job.Artifacts.OutputDir)
	if job.Artifacts.SaveDetails {
		args = append(args, "--save-details")
	}

	if job.ScoringMode != "" {
		overlay[EnvScoringMode] = job.ScoringMode
	}
	if job.ScoringConfig != nil {
		overlay[EnvScoringConfig] = canonicalJSON(job.ScoringConfig)
	}

	for _, plugin := range job.CustomPlugins {
		args = append(args, "--custom-tasks", plugin.Name)
	}

	overlay[EnvBenchmarkPackID] = job.BenchmarkPackID
	if job.RunName != "" {
		overlay[EnvRunName] = job.RunName
	}

	return Invocation{
		Args:    args,
		Overlay: overlay,
		Env:     base.Overlay(overlay),
	}
}

// canonicalJSON encodes v compactly with sorted object keys and no HTML
// escaping. Validated jobs only hold JSON-representable values.
func canonicalJSON(v any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		panic(fmt.Sprintf("invocation: encode %T: %v", v, err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// formatFloat renders the shortest form of f, keeping ".0" on integral
// values.
func formatFloat(f float64) string {
	return jobspec.Float(f).String()
}
