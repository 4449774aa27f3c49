package jobspec

// DefaultVersion is assumed when jobspec_version is omitted.
const DefaultVersion = "1"

// DefaultNumFewshotSeeds is used when num_fewshot_seeds is omitted.
const DefaultNumFewshotSeeds = 1

// JobSpec describes one evaluation job. Values returned by Validate are
// treated as read-only.
type JobSpec struct {
	JobSpecVersion  string            `json:"jobspec_version" jsonschema:"default=1"`
	BenchmarkPackID string            `json:"benchmark_pack_id" jsonschema:"required"`
	RunName         string            `json:"run_name,omitempty"`
	MaxSamples      *int              `json:"max_samples,omitempty" jsonschema:"minimum=1"`
	NumFewshotSeeds int               `json:"num_fewshot_seeds" jsonschema:"minimum=1,default=1"`
	Backend         BackendConfig     `json:"backend" jsonschema:"required"`
	Generation      *GenerationConfig `json:"generation,omitempty"`
	Tasks           []TaskEntry       `json:"tasks" jsonschema:"required,minItems=1"`
	CustomPlugins   []CustomPlugin    `json:"custom_plugins,omitempty"`
	Artifacts       ArtifactsConfig   `json:"artifacts" jsonschema:"required"`
	ScoringMode     string            `json:"scoring_mode,omitempty"`
	ScoringConfig   *ScoringConfig    `json:"scoring_config,omitempty"`

	// IgnoredFields lists document keys outside the schema, by dotted path.
	IgnoredFields []string `json:"-"`
}

// BackendConfig names the model-serving target.
type BackendConfig struct {
	Type               string `json:"type" jsonschema:"required"`
	ModelName          string `json:"model_name" jsonschema:"required"`
	Provider           string `json:"provider,omitempty"`
	BaseURL            string `json:"base_url,omitempty"`
	ParallelCallsCount *int   `json:"parallel_calls_count,omitempty" jsonschema:"minimum=1"`
}

type GenerationConfig struct {
	Temperature  *float64 `json:"temperature,omitempty" jsonschema:"minimum=0,maximum=2"`
	MaxNewTokens *int     `json:"max_new_tokens,omitempty" jsonschema:"minimum=1"`
	TopP         *float64 `json:"top_p,omitempty" jsonschema:"minimum=0,maximum=1"`
}

// TaskEntry is one benchmark task in the job.
type TaskEntry struct {
	ID      string         `json:"id" jsonschema:"required"`
	Fewshot int            `json:"fewshot" jsonschema:"required,minimum=0"`
	Params  map[string]any `json:"params,omitempty"`
}

// CustomPlugin names an extension task pack.
type CustomPlugin struct {
	Name    string `json:"name" jsonschema:"required"`
	Version string `json:"version" jsonschema:"required"`
}

type ArtifactsConfig struct {
	OutputDir   string `json:"output_dir" jsonschema:"required"`
	SaveDetails bool   `json:"save_details" jsonschema:"default=false"`
}

// ScoringConfig is forwarded to the engine as JSON. Unset fields encode as
// null so the payload always carries every key.
type ScoringConfig struct {
	JudgeTemplateID    *string      `json:"judge_template_id"`
	Judges             []JudgeEntry `json:"judges"`
	Aggregation        *string      `json:"aggregation"`
	ReportDisagreement *bool        `json:"report_disagreement"`
}

// JudgeEntry configures one judge model.
type JudgeEntry struct {
	JudgeModelName  string   `json:"judge_model_name" jsonschema:"required"`
	JudgeBackend    string   `json:"judge_backend" jsonschema:"required"`
	Weight          *Float   `json:"weight"`
	MaxTokens       *int     `json:"max_tokens" jsonschema:"minimum=1"`
	JudgeTemplateID *string  `json:"judge_template_id"`
}
