package pagingconfig_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gsm-bts/pager/internal/pagingconfig"
)

func TestNPagBlocks(t *testing.T) {
	t.Parallel()
	d := pagingconfig.CcchDescriptor{BSAGBlksRes: 1, BSPAMfrms: 0}
	if got := d.NPagBlocks(); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}
}

func TestValidateCcchDescriptor(t *testing.T) {
	t.Parallel()
	bad := pagingconfig.CcchDescriptor{BSAGBlksRes: 8}
	if err := bad.Validate(); err != pagingconfig.ErrInvalidBSAGBlksRes {
		t.Errorf("Expected ErrInvalidBSAGBlksRes, got %v", err)
	}

	bad2 := pagingconfig.CcchDescriptor{BSPAMfrms: 9}
	if err := bad2.Validate(); err != pagingconfig.ErrInvalidBSPAMfrms {
		t.Errorf("Expected ErrInvalidBSPAMfrms, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()
	cfg := pagingconfig.Config{
		NumPagingMax:   0,
		PagingLifetime: time.Second,
	}
	if err := cfg.Validate(); err != pagingconfig.ErrInvalidNumPagingMax {
		t.Errorf("Expected ErrInvalidNumPagingMax, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "ccch.yaml")
	contents := "num_paging_max: 20\npaging_lifetime_secs: 30\nbs_ag_blks_res: 1\nbs_pa_mfrms: 0\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := pagingconfig.LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if cfg.NumPagingMax != 20 {
		t.Errorf("Expected NumPagingMax 20, got %d", cfg.NumPagingMax)
	}
	if cfg.PagingLifetime != 30*time.Second {
		t.Errorf("Expected 30s lifetime, got %v", cfg.PagingLifetime)
	}
	if cfg.CCCH.BSAGBlksRes != 1 {
		t.Errorf("Expected BSAGBlksRes 1, got %d", cfg.CCCH.BSAGBlksRes)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	t.Parallel()
	_, err := pagingconfig.LoadYAML("/nonexistent/ccch.yaml")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
