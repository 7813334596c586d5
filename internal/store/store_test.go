package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hokim6252-glitch/ceosim/internal/entropy"
	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	catalog := sim.DefaultCatalog()
	e := sim.NewEngine(entropy.NewSeeded(1), catalog)
	s := e.NewGame("Acme Games")

	if err := db.Save("slot1", s); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := db.Load("slot1", catalog)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Company.Name != s.Company.Name || loaded.Company.Assets != s.Company.Assets {
		t.Errorf("company = %+v, want %+v", loaded.Company, s.Company)
	}
	if !loaded.Date.Equal(s.Date) {
		t.Errorf("date = %v, want %v", loaded.Date, s.Date)
	}
	if len(loaded.Departments) != len(s.Departments) || len(loaded.FinancialAssets) != len(s.FinancialAssets) {
		t.Error("collections did not survive the round trip")
	}
}

func TestLoadNormalizesDerivedFields(t *testing.T) {
	db := openTestDB(t)
	catalog := sim.DefaultCatalog()
	e := sim.NewEngine(entropy.NewSeeded(2), catalog)
	s := e.NewGame("Acme Games")
	s.Company.EmployeeCapacity = 9999 // stale derived value

	if err := db.Save("slot1", s); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := db.Load("slot1", catalog)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Company.EmployeeCapacity != 30 {
		t.Errorf("capacity = %d, want 30 recomputed from buildings", loaded.Company.EmployeeCapacity)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Load("nope", sim.DefaultCatalog()); !errors.Is(err, ErrNoSave) {
		t.Errorf("err = %v, want ErrNoSave", err)
	}
}

func TestSlotsAndDelete(t *testing.T) {
	db := openTestDB(t)
	catalog := sim.DefaultCatalog()
	e := sim.NewEngine(entropy.NewSeeded(3), catalog)
	s := e.NewGame("Acme Games")

	if err := db.Save("alpha", s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.Save("beta", s); err != nil {
		t.Fatalf("save: %v", err)
	}

	infos, err := db.Slots()
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("slots = %+v, want two", infos)
	}

	if err := db.Delete("alpha"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Load("alpha", catalog); !errors.Is(err, ErrNoSave) {
		t.Errorf("err = %v, want ErrNoSave after delete", err)
	}
	if err := db.Delete("alpha"); err != nil {
		t.Errorf("deleting an empty slot: %v", err)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveMeta("schema_version", "1"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	v, err := db.GetMeta("schema_version")
	if err != nil || v != "1" {
		t.Errorf("meta = %q (%v), want \"1\"", v, err)
	}
}
