package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindDataFile(t *testing.T) {
	// /tmp/
	//   home/ (journal-7c1e.json)
	//     subdir/
	//       nested/
	//   empty/
	//     journal-7c1e.json/ (directory, not a file)

	const name = "journal-7c1e.json"

	baseDir := t.TempDir()
	homeDir := filepath.Join(baseDir, "home")
	subDir := filepath.Join(homeDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(emptyDir, name), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(homeDir, name), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(homeDir, name)

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{name: "Start at Home", startPath: homeDir, want: want},
		{name: "Start in Subdir", startPath: subDir, want: want},
		{name: "Start Nested Deeply", startPath: nestedDir, want: want},
		{name: "Directories Do Not Count", startPath: emptyDir, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindDataFile(tt.startPath, name)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindDataFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrDataFileNotFound) {
					t.Errorf("expected ErrDataFileNotFound, got %v", err)
				}
				return
			}
			if filepath.Clean(got) != filepath.Clean(tt.want) {
				t.Errorf("FindDataFile() = %v, want %v", got, tt.want)
			}
		})
	}
}
