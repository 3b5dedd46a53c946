package i18n

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML builds a Translator from a YAML mapping of code to message
// template. Codes absent from the table fall back to the built-in English
// dictionary, so a partial table only overrides what it names.
//
//	string_min: "mindestens {min} Zeichen"
//	required: "Pflichtfeld"
func LoadYAML(r io.Reader) (Translator, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("i18n: read message table: %w", err)
	}
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("i18n: parse message table: %w", err)
	}
	merged := make(map[string]string, len(defaultMessages)+len(table))
	for k, v := range defaultMessages {
		merged[k] = v
	}
	for k, v := range table {
		merged[k] = v
	}
	return dictTranslator{messages: merged}, nil
}
