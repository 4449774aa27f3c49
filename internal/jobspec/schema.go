package jobspec

import "github.com/invopop/jsonschema"

// SchemaID identifies the published JobSpec schema.
const SchemaID = "https://evalrunner.local/schemas/jobspec-v1.json"

// Schema returns the JSON Schema for JobSpec documents.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&JobSpec{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "JobSpec"
	schema.Description = "One evaluation job for the runner."
	return schema
}
