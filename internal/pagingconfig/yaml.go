package pagingconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors Config's shape for (de)serialization; PagingLifetime
// is expressed in seconds on disk since spec.md §3's expiration deadlines
// are wall-clock seconds.
type yamlConfig struct {
	NumPagingMax       int   `yaml:"num_paging_max"`
	PagingLifetimeSecs int   `yaml:"paging_lifetime_secs"`
	BSAGBlksRes        uint8 `yaml:"bs_ag_blks_res"`
	BSPAMfrms          uint8 `yaml:"bs_pa_mfrms"`
}

// LoadYAML reads a Config from a YAML file, in the shape of a bench-CLI
// descriptor seed (there is no VTY console in this module's scope).
func LoadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pagingconfig: read %s: %w", path, err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("pagingconfig: parse %s: %w", path, err)
	}

	cfg := Config{
		NumPagingMax:   raw.NumPagingMax,
		PagingLifetime: time.Duration(raw.PagingLifetimeSecs) * time.Second,
		CCCH: CcchDescriptor{
			BSAGBlksRes: raw.BSAGBlksRes,
			BSPAMfrms:   raw.BSPAMfrms,
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
