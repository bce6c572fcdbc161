package loader

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Rana718/bankseed/internal/database/common"
	"github.com/Rana718/bankseed/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

type TableSpec struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Manifest lists the tables to load, in order, and the foreign keys to declare.
type Manifest struct {
	Tables      []TableSpec        `yaml:"tables"`
	ForeignKeys []types.ForeignKey `yaml:"foreign_keys"`
}

func DefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultManifest)
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	for i := range m.Tables {
		if m.Tables[i].File == "" {
			m.Tables[i].File = m.Tables[i].Name + ".csv"
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	if len(m.Tables) == 0 {
		return fmt.Errorf("manifest lists no tables")
	}

	seen := make(map[string]bool, len(m.Tables))
	for _, t := range m.Tables {
		if err := common.ValidateIdentifier(t.Name); err != nil {
			return fmt.Errorf("manifest table: %w", err)
		}
		if seen[t.Name] {
			return fmt.Errorf("table %s listed twice in manifest", t.Name)
		}
		seen[t.Name] = true
	}

	for _, fk := range m.ForeignKeys {
		for _, name := range []string{fk.Table, fk.Column, fk.RefTable, fk.RefColumn} {
			if err := common.ValidateIdentifier(name); err != nil {
				return fmt.Errorf("foreign key %s.%s: %w", fk.Table, fk.Column, err)
			}
		}
	}
	return nil
}
