package schema

import "github.com/invopop/jsonschema"

// JSONSchema describes Output for backends that constrain generation to a
// schema. The blog property is required when includeBlog is set and removed
// otherwise.
func JSONSchema(includeBlog bool) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Output{})
	s.Version = ""
	s.ID = ""

	if includeBlog {
		s.Required = append(s.Required, "blog")
	} else if s.Properties != nil {
		s.Properties.Delete("blog")
	}
	return s
}
