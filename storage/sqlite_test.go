package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.GetInt(KeyXP); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want unset", ok, err)
	}

	if err := s.PutInt(KeyXP, 105); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	if err := s.PutInt(KeyXP, 106); err != nil {
		t.Fatalf("PutInt overwrite: %v", err)
	}

	v, ok, err := s.GetInt(KeyXP)
	if err != nil || !ok || v != 106 {
		t.Errorf("GetInt = %d, %v, %v; want 106, true, nil", v, ok, err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	for key, v := range map[string]int{KeyXP: 100, KeyLevel: 2, KeyXPNextAbs: 110, KeyXPLevelStart: 100} {
		if err := s.PutInt(key, v); err != nil {
			t.Fatalf("PutInt(%s): %v", key, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.GetInt(KeyXPNextAbs)
	if err != nil || !ok || v != 110 {
		t.Errorf("reloaded threshold = %d, %v, %v; want 110, true, nil", v, ok, err)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Errorf("OpenSQLite with blank path succeeded")
	}
}
