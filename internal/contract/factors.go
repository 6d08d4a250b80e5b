package contract

import (
	"fmt"
	"os"

	"github.com/mariam-attia/dealscore/schema"
	"gopkg.in/yaml.v3"
)

// successFactorsFile is the on-disk layout of a custom factor table.
//
//	factors:
//	  - name: Strategic Alignment
//	    impact: 92
//	    sustainability: 85
type successFactorsFile struct {
	Factors []schema.SuccessFactor `yaml:"factors"`
}

// LoadSuccessFactors reads a YAML success factor table from disk.
func LoadSuccessFactors(path string) ([]schema.SuccessFactor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read factors file: %w", err)
	}
	return ParseSuccessFactors(data)
}

// ParseSuccessFactors decodes and validates a YAML success factor table.
func ParseSuccessFactors(data []byte) ([]schema.SuccessFactor, error) {
	var file successFactorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse factors file: %w", err)
	}
	if len(file.Factors) == 0 {
		return nil, fmt.Errorf("factors file must list at least one factor")
	}
	if err := schema.ValidateSuccessFactors(file.Factors); err != nil {
		return nil, err
	}
	return file.Factors, nil
}
