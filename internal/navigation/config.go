package navigation

import (
	"fmt"
	"io/fs"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// The sidebar config file is the single system of record for a build. Links
// declare a label and a document path; groups declare a label and ordered
// items. The schema rejects entries that are both or neither.
const configSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["sidebar"],
	"additionalProperties": false,
	"properties": {
		"sidebar": {
			"type": "array",
			"items": {"$ref": "#/$defs/entry"}
		}
	},
	"$defs": {
		"entry": {
			"type": "object",
			"required": ["label"],
			"additionalProperties": false,
			"properties": {
				"label": {"type": "string", "minLength": 1},
				"path": {"type": "string", "minLength": 1},
				"items": {
					"type": "array",
					"minItems": 1,
					"items": {"$ref": "#/$defs/entry"}
				}
			},
			"oneOf": [
				{"required": ["path"]},
				{"required": ["items"]}
			]
		}
	}
}`

var compiledConfigSchema = jsonschema.MustCompileString("navigation.schema.json", configSchema)

type configDocument struct {
	Sidebar []configEntry `yaml:"sidebar"`
}

type configEntry struct {
	Label string        `yaml:"label"`
	Path  string        `yaml:"path"`
	Items []configEntry `yaml:"items"`
}

// Parse decodes a YAML sidebar definition into a Tree. The raw document is
// validated against the embedded JSON schema before decoding so config
// mistakes fail with schema locations instead of downstream resolver errors.
func Parse(source []byte) (Tree, error) {
	var raw any
	if err := yaml.Unmarshal(source, &raw); err != nil {
		return Tree{}, fmt.Errorf("navigation config: decode yaml: %w", err)
	}
	if raw == nil {
		return Tree{}, fmt.Errorf("navigation config: document is empty")
	}

	if err := compiledConfigSchema.Validate(raw); err != nil {
		return Tree{}, fmt.Errorf("navigation config: schema validation: %w", err)
	}

	var doc configDocument
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return Tree{}, fmt.Errorf("navigation config: decode sidebar: %w", err)
	}

	tree := NewTree(entriesFromConfig(doc.Sidebar)...)
	if err := tree.Validate(); err != nil {
		return Tree{}, err
	}
	return tree, nil
}

// LoadFile reads and parses the sidebar definition at path.
func LoadFile(fsys fs.FS, path string) (Tree, error) {
	data, err := fs.ReadFile(fsys, strings.TrimPrefix(path, "./"))
	if err != nil {
		return Tree{}, fmt.Errorf("navigation config: read %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return Tree{}, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func entriesFromConfig(entries []configEntry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Items) > 0 {
			out = append(out, Group(entry.Label, entriesFromConfig(entry.Items)...))
			continue
		}
		out = append(out, Link(entry.Label, entry.Path))
	}
	return out
}
