package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.SaveSlot != "default" || cfg.OracleChance != 0.1 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CEOSIM_ADDR", ":9999")
	t.Setenv("CEOSIM_COMPANY_NAME", "Jade Harbor Interactive")
	t.Setenv("CEOSIM_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.CompanyName != "Jade Harbor Interactive" || cfg.Seed != 42 {
		t.Errorf("overrides = %+v", cfg)
	}
}

func TestLoadRejectsBadOracleChance(t *testing.T) {
	t.Setenv("CEOSIM_ORACLE_CHANCE", "1.5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range oracle chance")
	}
}
