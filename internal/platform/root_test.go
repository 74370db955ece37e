package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// Create a temp directory structure
	// /tmp/
	//   graph/ (logseq/)
	//     journals/
	//       nested/
	//   configured/ (.almanac.yaml)
	//     pages/
	//   empty/

	baseDir := t.TempDir()
	graphDir := filepath.Join(baseDir, "graph")
	journalsDir := filepath.Join(graphDir, "journals")
	nestedDir := filepath.Join(journalsDir, "nested")
	configuredDir := filepath.Join(baseDir, "configured")
	pagesDir := filepath.Join(configuredDir, "pages")
	emptyDir := filepath.Join(baseDir, "empty")

	for _, dir := range []string{nestedDir, filepath.Join(graphDir, "logseq"), pagesDir, emptyDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(configuredDir, ConfigFile), []byte("commit: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: graphDir,
			wantRoot:  graphDir,
		},
		{
			name:      "Start in Journals",
			startPath: journalsDir,
			wantRoot:  graphDir,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			wantRoot:  graphDir,
		},
		{
			name:      "Config File Marker",
			startPath: pagesDir,
			wantRoot:  configuredDir,
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && !errors.Is(err, ErrRootNotFound) {
				t.Errorf("FindRoot() error = %v, want ErrRootNotFound", err)
			}

			// Compare cleaned paths to avoid trailing slash issues
			if got != "" && filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}

func TestFindRoot_LogseqFileIsNotAMarker(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logseq"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := FindRoot(dir); err == nil {
		t.Errorf("FindRoot() = %v, want error", got)
	}
}
