package jobspec

// Validate checks an untyped JobSpec document and returns the typed value.
// Every violation found is reported in a single *ValidationError. Keys the
// schema does not define are skipped and listed in IgnoredFields.
func Validate(doc map[string]any) (JobSpec, error) {
	collector := &issueCollector{}
	if doc == nil {
		collector.add("document", "is required")
		return JobSpec{}, collector.result()
	}
	root := asObject("", doc, true, collector)

	job := JobSpec{
		JobSpecVersion:  DefaultVersion,
		NumFewshotSeeds: DefaultNumFewshotSeeds,
	}

	if version := root.optionalString("jobspec_version"); version != nil {
		job.JobSpecVersion = *version
	}
	job.BenchmarkPackID = root.requiredString("benchmark_pack_id")
	if runName := root.optionalString("run_name"); runName != nil {
		job.RunName = *runName
	}

	job.MaxSamples = root.optionalInt("max_samples")
	checkPositive("max_samples", job.MaxSamples, collector.add)
	if seeds := root.optionalInt("num_fewshot_seeds"); seeds != nil {
		checkPositive("num_fewshot_seeds", seeds, collector.add)
		job.NumFewshotSeeds = *seeds
	}

	job.Backend = validateBackend(root.child("backend", true), collector.add)
	job.Generation = validateGeneration(root.child("generation", false), collector.add)
	job.Tasks = validateTasks(root, collector.add)
	job.CustomPlugins = validatePlugins(root)
	job.Artifacts = validateArtifacts(root.child("artifacts", true))

	if mode := root.optionalString("scoring_mode"); mode != nil {
		job.ScoringMode = *mode
	}
	job.ScoringConfig = validateScoringConfig(root.child("scoring_config", false), collector.add)

	root.skipUnknown()

	if err := collector.result(); err != nil {
		return JobSpec{}, err
	}
	job.IgnoredFields = collector.ignored
	return job, nil
}

// validateBackend reads the backend block.
func validateBackend(obj *object, add issueAdder) BackendConfig {
	if obj == nil {
		return BackendConfig{}
	}
	backend := BackendConfig{
		Type:      obj.requiredString("type"),
		ModelName: obj.requiredString("model_name"),
	}
	if provider := obj.optionalString("provider"); provider != nil {
		backend.Provider = *provider
	}
	if baseURL := obj.optionalString("base_url"); baseURL != nil {
		backend.BaseURL = *baseURL
	}
	backend.ParallelCallsCount = obj.optionalInt("parallel_calls_count")
	checkPositive(obj.field("parallel_calls_count"), backend.ParallelCallsCount, add)
	obj.skipUnknown()
	return backend
}

// validateGeneration reads the optional generation block.
func validateGeneration(obj *object, add issueAdder) *GenerationConfig {
	if obj == nil {
		return nil
	}
	gen := &GenerationConfig{
		Temperature:  obj.optionalFloat("temperature"),
		MaxNewTokens: obj.optionalInt("max_new_tokens"),
		TopP:         obj.optionalFloat("top_p"),
	}
	checkRange(obj.field("temperature"), gen.Temperature, 0, 2, add)
	checkPositive(obj.field("max_new_tokens"), gen.MaxNewTokens, add)
	checkRange(obj.field("top_p"), gen.TopP, 0, 1, add)
	obj.skipUnknown()
	return gen
}

// validateArtifacts reads the artifacts block.
func validateArtifacts(obj *object) ArtifactsConfig {
	if obj == nil {
		return ArtifactsConfig{}
	}
	artifacts := ArtifactsConfig{OutputDir: obj.requiredString("output_dir")}
	if save := obj.optionalBool("save_details"); save != nil {
		artifacts.SaveDetails = *save
	}
	obj.skipUnknown()
	return artifacts
}
