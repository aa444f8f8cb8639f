package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadColumn(t *testing.T) {
	path := writeCSV(t, "id,note\n1,\"Patient seen today.\"\n2,\"Bloods normal.\"\n")
	texts, err := LoadColumn(path, "note")
	if err != nil {
		t.Fatalf("LoadColumn: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(texts))
	}
	if texts[0] != "Patient seen today." || texts[1] != "Bloods normal." {
		t.Errorf("unexpected texts: %v", texts)
	}
}

func TestLoadColumn_ShortRow(t *testing.T) {
	path := writeCSV(t, "id,note\n1,\"Patient seen today.\"\n2\n")
	texts, err := LoadColumn(path, "note")
	if err != nil {
		t.Fatalf("LoadColumn: %v", err)
	}
	if len(texts) != 2 || texts[1] != "" {
		t.Errorf("short rows should yield empty strings: %v", texts)
	}
}

func TestLoadColumn_MissingColumn(t *testing.T) {
	path := writeCSV(t, "id,text\n1,hello\n")
	if _, err := LoadColumn(path, "note"); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestLoadColumn_MissingFile(t *testing.T) {
	if _, err := LoadColumn(filepath.Join(t.TempDir(), "absent.csv"), "note"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
