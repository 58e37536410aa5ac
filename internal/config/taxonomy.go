package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Taxonomy holds the keyword data the text-analysis services match against.
// It is built once at startup and injected, never mutated afterwards.
type Taxonomy struct {
	// TechKeywords is the vocabulary of known technology terms, lowercase.
	TechKeywords []string `json:"tech_keywords"`
	// SectionHeaders maps a section label to the header keywords that open
	// it. Labels are matched in the order of SectionOrder.
	SectionHeaders map[string][]string `json:"section_headers"`
	// SectionOrder fixes the header-matching order so a line that could
	// match several categories always resolves the same way.
	SectionOrder []string `json:"section_order"`
	// GenderNeutral maps gendered pronouns and role nouns to neutral forms.
	GenderNeutral map[string]string `json:"gender_neutral"`
}

// DefaultTaxonomy returns the built-in keyword data.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		TechKeywords: []string{
			"python", "java", "javascript", "typescript", "go", "golang",
			"react", "vue", "angular", "node.js", "fastapi",
			"postgresql", "mysql", "mongodb", "redis", "sql",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"nlp", "machine learning", "pytorch", "tensorflow",
			"ci/cd", "git", "graphql", "grpc", "kafka", "microservices",
		},
		SectionHeaders: map[string][]string{
			"experience": {"work experience", "professional experience", "employment history", "experience"},
			"skills":     {"skills", "technical skills", "competencies", "technologies"},
			"education":  {"education", "academic background", "qualifications"},
			"summary":    {"summary", "profile", "objective"},
		},
		SectionOrder: []string{"experience", "skills", "education", "summary"},
		GenderNeutral: map[string]string{
			"he": "they", "she": "they",
			"him": "them", "her": "them",
			"his": "their", "hers": "theirs",
			"himself": "themselves", "herself": "themselves",
			"chairman": "chairperson", "chairwoman": "chairperson",
			"salesman": "salesperson", "saleswoman": "salesperson",
			"businessman": "businessperson", "businesswoman": "businessperson",
			"spokesman": "spokesperson", "spokeswoman": "spokesperson",
			"foreman": "supervisor", "forewoman": "supervisor",
			"waiter": "server", "waitress": "server",
		},
	}
}

// LoadTaxonomy reads a taxonomy override from a JSON file. An empty path
// returns the defaults.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	if len(tax.SectionOrder) == 0 || len(tax.SectionHeaders) == 0 {
		return nil, fmt.Errorf("taxonomy file must define section_headers and section_order")
	}

	return &tax, nil
}
