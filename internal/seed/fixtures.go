package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document accepted by LoadFixtures.
type Fixtures struct {
	Users []FixtureUser `yaml:"users"`
}

type FixtureUser struct {
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	ImageURL  string        `yaml:"image_url"`
	Posts     []FixturePost `yaml:"posts"`
}

type FixturePost struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// LoadFixtures reads and parses a fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes fixture YAML. Unknown keys are rejected.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}
