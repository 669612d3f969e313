package ui

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShowJSON displays formatted JSON output
func (ui *BubbleteaUI) ShowJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(ui.stdout, string(jsonData))
	return nil
}

// ShowYAML displays formatted YAML output, indented by two spaces
func (ui *BubbleteaUI) ShowYAML(data any) error {
	enc := yaml.NewEncoder(ui.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return nil
}
