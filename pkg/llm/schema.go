package llm

// SchemaType mirrors the OpenAPI subset that Gemini, Ollama and
// OpenAI-compatible servers accept for structured output.
type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

// Schema describes the expected JSON output of a generation call.
type Schema struct {
	Type       SchemaType         `json:"type"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	// Order keeps property order stable for backends that honour it.
	Order []string `json:"-"`
}

func StringSchema() *Schema {
	return &Schema{Type: TypeString}
}

func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// ObjectOf builds an object schema. Properties are listed as name/schema
// pairs so the declared order survives.
func ObjectOf(props ...Property) *Schema {
	s := &Schema{Type: TypeObject, Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

type Property struct {
	Name     string
	Schema   *Schema
	Required bool
}

// JSONSchema renders the schema as a plain JSON-Schema map, which is what
// the Ollama `format` field and OpenAI `response_format` expect.
func (s *Schema) JSONSchema() map[string]interface{} {
	if s == nil {
		return nil
	}
	out := map[string]interface{}{"type": string(s.Type)}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	return out
}
