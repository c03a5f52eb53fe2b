package patterns

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// DefaultName is the table set used when none is configured.
const DefaultName = "english"

// builtinTables maps table set names to their parsed tables
var builtinTables = map[string]*Tables{}

func init() {
	entries, err := tablesFS.ReadDir("tables")
	if err != nil {
		panic(fmt.Sprintf("patterns: reading embedded tables: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := tablesFS.ReadFile(path.Join("tables", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("patterns: reading %s: %v", entry.Name(), err))
		}

		// A broken built-in table is a build defect, not a runtime condition.
		t, err := parse(data)
		if err != nil {
			panic(fmt.Sprintf("patterns: %s: %v", entry.Name(), err))
		}
		builtinTables[t.Name] = t
	}

	if _, ok := builtinTables[DefaultName]; !ok {
		panic("patterns: missing built-in table set " + DefaultName)
	}
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := t.compile(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Default returns the built-in English tables.
func Default() *Tables {
	return builtinTables[DefaultName]
}

// Load returns a built-in table set by name
func Load(name string) (*Tables, error) {
	if t, ok := builtinTables[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown table set: %s", name)
}

// Available returns the names of all built-in table sets, sorted.
func Available() []string {
	names := make([]string, 0, len(builtinTables))
	for name := range builtinTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a user-supplied table set from a YAML file.
func LoadFile(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}

	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid table file %s: %w", filename, err)
	}
	return t, nil
}
