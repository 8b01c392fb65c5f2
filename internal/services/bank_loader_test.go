package services

import (
	"os"
	"path/filepath"
	"testing"
)

const banksYAML = `assessments:
  - id: networking
    title: Networking Assessment
    questions:
      - id: 1
        question: Which protocol underpins HTTP?
        options: ["UDP", "TCP", "ICMP", "ARP"]
        correct: 1
      - id: 2
        question: Default HTTPS port?
        options: ["80", "8080", "443", "22"]
        correct: 2
`

func TestLoadBanksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	if err := os.WriteFile(path, []byte(banksYAML), 0644); err != nil {
		t.Fatalf("write banks file: %v", err)
	}

	banks, err := LoadBanksFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(banks) != 1 || banks[0].ID != "networking" {
		t.Fatalf("unexpected banks: %+v", banks)
	}
	if len(banks[0].Questions) != 2 || banks[0].Questions[1].Correct != 2 {
		t.Fatalf("unexpected questions: %+v", banks[0].Questions)
	}
}

func TestLoadBanksFileRejectsBadCorrectIndex(t *testing.T) {
	bad := `assessments:
  - id: x
    title: X
    questions:
      - id: 1
        question: q
        options: ["a", "b", "c", "d"]
        correct: 5
`
	path := filepath.Join(t.TempDir(), "banks.yaml")
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatalf("write banks file: %v", err)
	}

	if _, err := LoadBanksFile(path); err == nil {
		t.Fatalf("expected error for out-of-range correct index")
	}
}

func TestLoadBanksFileRejectsEmptyQuestionList(t *testing.T) {
	// An empty bank would later grade as 100*0/0, so it must never load
	bad := `assessments:
  - id: empty
    title: Empty Assessment
    questions: []
`
	path := filepath.Join(t.TempDir(), "banks.yaml")
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatalf("write banks file: %v", err)
	}

	if _, err := LoadBanksFile(path); err == nil {
		t.Fatalf("expected error for bank without questions")
	}
}

func TestLoadBanksFileRejectsWrongOptionCount(t *testing.T) {
	tests := []struct {
		name    string
		options string
	}{
		{"too few", `["a", "b"]`},
		{"too many", `["a", "b", "c", "d", "e"]`},
		{"none", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := `assessments:
  - id: x
    title: X
    questions:
      - id: 1
        question: q
        options: ` + tt.options + `
        correct: 0
`
			path := filepath.Join(t.TempDir(), "banks.yaml")
			if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
				t.Fatalf("write banks file: %v", err)
			}

			if _, err := LoadBanksFile(path); err == nil {
				t.Fatalf("expected error for %s options", tt.name)
			}
		})
	}
}

func TestLoadBanksFileMissing(t *testing.T) {
	if _, err := LoadBanksFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
