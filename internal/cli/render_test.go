package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
)

// chdir switches to dir for the duration of the test, like t.Chdir in
// newer Go versions.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

func TestRunRenderMissingInput(t *testing.T) {
	chdir(t, t.TempDir())

	err := runRender(context.Background(), "no_such_file.csv", defaultConfig)
	if err != nil {
		t.Fatalf("runRender on missing input: %v", err)
	}
	if _, err := os.Stat(defaultOutput); !os.IsNotExist(err) {
		t.Errorf("%s was created for a missing input", defaultOutput)
	}
}

func TestRunRenderWritesOutput(t *testing.T) {
	chdir(t, t.TempDir())

	content := `# Ruta vehiculo 1
0,0,0
5,5,1
0,0,0
# Ruta vehiculo 2
0,0,0
3,1,2
0,0,0
`
	if err := os.WriteFile(defaultInput, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runRender(context.Background(), defaultInput, defaultConfig); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(defaultOutput)
	if err != nil {
		t.Fatalf("output image missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("%s is not a PNG", defaultOutput)
	}
}

func TestRunRenderBadConfig(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.WriteFile(defaultConfig, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := runRender(context.Background(), defaultInput, defaultConfig); err == nil {
		t.Fatal("runRender with malformed config succeeded, want error")
	}
}
