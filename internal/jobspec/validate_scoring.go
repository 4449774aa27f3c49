package jobspec

// validateScoringConfig reads the optional scoring_config block.
func validateScoringConfig(obj *object, add issueAdder) *ScoringConfig {
	if obj == nil {
		return nil
	}
	cfg := &ScoringConfig{
		JudgeTemplateID:    obj.optionalString("judge_template_id"),
		Aggregation:        obj.optionalString("aggregation"),
		ReportDisagreement: obj.optionalBool("report_disagreement"),
	}
	if items, ok := obj.list("judges", false); ok {
		cfg.Judges = make([]JudgeEntry, 0, len(items))
		for i, item := range items {
			judge := obj.element(itemPath(obj.field("judges"), i), item)
			if judge == nil {
				continue
			}
			entry := JudgeEntry{
				JudgeModelName:  judge.requiredString("judge_model_name"),
				JudgeBackend:    judge.requiredString("judge_backend"),
				Weight:          floatPtr(judge.optionalFloat("weight")),
				MaxTokens:       judge.optionalInt("max_tokens"),
				JudgeTemplateID: judge.optionalString("judge_template_id"),
			}
			checkPositive(judge.field("max_tokens"), entry.MaxTokens, add)
			judge.skipUnknown()
			cfg.Judges = append(cfg.Judges, entry)
		}
	}
	obj.skipUnknown()
	return cfg
}
