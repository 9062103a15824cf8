package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExtension(t *testing.T) {
	tempDir := t.TempDir()

	// inv-hello writes the environment it received into the file given as argument.
	script := `#!/bin/sh
echo "` + EnvVerbose + `=$` + EnvVerbose + `" > "$1"
echo "` + EnvPlain + `=$` + EnvPlain + `" >> "$1"
exit 3
`
	if err := os.WriteFile(filepath.Join(tempDir, "inv-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write inv-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	*Verbose, *Plain = true, false
	t.Cleanup(func() { *Verbose, *Plain = false, false })

	out := filepath.Join(tempDir, "env.txt")
	found, code := RunExtension("hello", []string{out})
	if !found {
		t.Fatalf("inv-hello was not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	for _, want := range []string{EnvVerbose + "=true", EnvPlain + "=false"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("extension environment does not contain %q:\n%s", want, content)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension found a missing extension")
	}
}
