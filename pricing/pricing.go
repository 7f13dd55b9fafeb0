package pricing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HoursPerMonth is the hours-per-month approximation used for monthly savings
const HoursPerMonth = 730

var ErrInvalidRate = errors.New("rate must not be negative")

// StorageRates are S3 prices in USD per GB-month
type StorageRates struct {
	Standard           float64 `yaml:"standard"`
	IntelligentTiering float64 `yaml:"intelligent_tiering"`
	StandardIA         float64 `yaml:"standard_ia"`
}

// Table holds the static price data used by both advisors
type Table struct {
	// MachineTypes maps a GCE machine type to its on-demand USD/hour price
	MachineTypes map[string]float64 `yaml:"machine_types"`
	Storage      StorageRates       `yaml:"storage"`
}

func defaultMachineTypes() map[string]float64 {
	return map[string]float64{
		"n1-standard-1": 0.0475,
		"n1-standard-2": 0.0950,
		"e2-medium":     0.0210,
		"e2-standard-2": 0.0670,
	}
}

func defaultStorageRates() StorageRates {
	return StorageRates{
		Standard:           0.023,
		IntelligentTiering: 0.0125,
		StandardIA:         0.0125,
	}
}

func Default() *Table {
	return &Table{
		MachineTypes: defaultMachineTypes(),
		Storage:      defaultStorageRates(),
	}
}

// MachineTypePrice returns the hourly price of machineType, 0 when unknown
func (t *Table) MachineTypePrice(machineType string) float64 {
	if t == nil {
		return 0
	}
	return t.MachineTypes[machineType]
}

// Load returns the default table with the overrides found in the YAML file at
// path applied on top. An empty path yields the defaults.
func Load(path string) (*Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing file: %w", err)
	}

	if err := table.merge(data); err != nil {
		return nil, fmt.Errorf("failed to load pricing file %s: %w", path, err)
	}

	return table, nil
}

func (t *Table) merge(data []byte) error {
	var overrides struct {
		MachineTypes map[string]float64 `yaml:"machine_types"`
		Storage      struct {
			Standard           *float64 `yaml:"standard"`
			IntelligentTiering *float64 `yaml:"intelligent_tiering"`
			StandardIA         *float64 `yaml:"standard_ia"`
		} `yaml:"storage"`
	}

	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	for machineType, price := range overrides.MachineTypes {
		if price < 0 {
			return fmt.Errorf("machine type %s: %w", machineType, ErrInvalidRate)
		}
		t.MachineTypes[machineType] = price
	}

	rates := []struct {
		name  string
		value *float64
		dst   *float64
	}{
		{"standard", overrides.Storage.Standard, &t.Storage.Standard},
		{"intelligent_tiering", overrides.Storage.IntelligentTiering, &t.Storage.IntelligentTiering},
		{"standard_ia", overrides.Storage.StandardIA, &t.Storage.StandardIA},
	}
	for _, r := range rates {
		if r.value == nil {
			continue
		}
		if *r.value < 0 {
			return fmt.Errorf("storage rate %s: %w", r.name, ErrInvalidRate)
		}
		*r.dst = *r.value
	}

	return nil
}
