package provider

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// StrictSchema reflects T into a JSON schema that satisfies OpenAI strict structured output:
// every object closes additionalProperties and lists all of its properties as required.
func StrictSchema[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	raw, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	strictify(m)
	return m, nil
}

// MustStrictSchema is StrictSchema for package-level schema values.
func MustStrictSchema[T any]() map[string]any {
	m, err := StrictSchema[T]()
	if err != nil {
		panic(err)
	}
	return m
}

func strictify(node map[string]any) {
	props, _ := node["properties"].(map[string]any)
	if t, _ := node["type"].(string); t == "object" {
		node["additionalProperties"] = false
		if len(props) > 0 {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			sort.Strings(required)
			node["required"] = required
		}
	}
	for _, p := range props {
		if child, ok := p.(map[string]any); ok {
			strictify(child)
		}
	}
	if items, ok := node["items"].(map[string]any); ok {
		strictify(items)
	}
}
