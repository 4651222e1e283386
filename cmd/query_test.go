package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDump = `types:
  - identifier: Object
    description: Object data-block defining an object in a scene
    properties:
      - {identifier: name, description: Unique data-block name, type: STRING}
      - {identifier: location, description: Location of the object, type: FLOAT, array_length: 3}
      - {identifier: mode, type: ENUM, enum_items: [OBJECT, EDIT], is_readonly: true}
    functions:
      - identifier: ray_cast
        description: Cast a ray
        parameters:
          - {identifier: origin, type: FLOAT, array_length: 3}
          - {identifier: result, type: BOOLEAN, is_output: true}
  - identifier: Scene
    description: Scene data-block
    properties:
      - {identifier: name, description: Scene name, type: INT}
      - {identifier: camera, type: POINTER, fixed_type: Object}
`

// runCLI executes rootCmd with args against a temporary home and dump, and
// returns what the command printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIWithEnv(t, nil, args...)
}

// runCLIWithEnv is runCLI with extra RNADOC_* variables set.
func runCLIWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RNADOC_REGISTRY", "")
	t.Setenv("RNADOC_MANUAL_PROPERTIES", "")
	t.Setenv("RNADOC_DEBUG", "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	dump := filepath.Join(home, "registry.yaml")
	if err := os.WriteFile(dump, []byte(testDump), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() {
		stdout = old
		flagRegistry = ""
		flagDebug = false
	})

	rootCmd.SetArgs(append([]string{"--registry", dump}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCLI_Type(t *testing.T) {
	out, err := runCLI(t, "type", "Object")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	for _, want := range []string{
		"=== Object ===",
		"Object data-block defining an object in a scene",
		"Object.location",
		"Float Vector 3",
		"Enum [OBJECT, EDIT]",
		"Object.ray_cast(origin) -> result",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_TypeUnknown(t *testing.T) {
	if _, err := runCLI(t, "type", "Nope"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestCLI_ContextIncludesManualProperties(t *testing.T) {
	out, err := runCLI(t, "props", "Context")
	if err != nil {
		t.Fatalf("props: %v", err)
	}
	if !strings.Contains(out, "Context.active_object") {
		t.Fatalf("manual property missing:\n%s", out)
	}
}

func TestCLI_ManualPropertiesFromEnv(t *testing.T) {
	table := filepath.Join(t.TempDir(), "extra.yaml")
	body := "Context:\n  - {name: active_sequence_strip, type: Sequence, readonly: true}\n"
	if err := os.WriteFile(table, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLIWithEnv(t, map[string]string{"RNADOC_MANUAL_PROPERTIES": table}, "props", "Context")
	if err != nil {
		t.Fatalf("props: %v", err)
	}
	for _, want := range []string{"Context.active_object", "Context.active_sequence_strip"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_BadEnvFails(t *testing.T) {
	if _, err := runCLIWithEnv(t, map[string]string{"RNADOC_DEBUG": "maybe"}, "stats"); err == nil {
		t.Fatalf("expected error for invalid RNADOC_DEBUG")
	}
}

func TestCLI_Possible(t *testing.T) {
	out, err := runCLI(t, "possible", "name")
	if err != nil {
		t.Fatalf("possible: %v", err)
	}
	for _, want := range []string{"- Integer", "- String", "- Scene name", "- Unique data-block name"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_OwnersAndSubprops(t *testing.T) {
	out, err := runCLI(t, "owners", "name")
	if err != nil {
		t.Fatalf("owners: %v", err)
	}
	if !strings.Contains(out, "Object") || !strings.Contains(out, "Scene") {
		t.Fatalf("unexpected owners output:\n%s", out)
	}

	out, err = runCLI(t, "subprops", "camera")
	if err != nil {
		t.Fatalf("subprops: %v", err)
	}
	for _, want := range []string{"location", "mode", "name"} {
		if !strings.Contains(out, want) {
			t.Fatalf("subprops output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_Search(t *testing.T) {
	out, err := runCLI(t, "search", "RAY")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Results (1 found)") || !strings.Contains(out, "Object.ray_cast") {
		t.Fatalf("unexpected search output:\n%s", out)
	}
}

func TestCLI_Stats(t *testing.T) {
	out, err := runCLI(t, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "2 types") || !strings.Contains(out, "1 functions") {
		t.Fatalf("unexpected stats output:\n%s", out)
	}
}

func TestCLI_MissingDump(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { flagRegistry = "" })
	rootCmd.SetArgs([]string{"--registry", filepath.Join(t.TempDir(), "missing.yaml"), "stats"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected error for missing dump")
	}
}

func TestCLI_Init(t *testing.T) {
	out, err := runCLI(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	home := os.Getenv("HOME")
	for _, p := range []string{".rnadoc/rnadoc.yaml", ".rnadoc/.env"} {
		if _, err := os.Stat(filepath.Join(home, p)); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}
	if !strings.Contains(out, "config written") || !strings.Contains(out, "env template written") {
		t.Fatalf("unexpected init output:\n%s", out)
	}
}

func TestEmptyAsNA(t *testing.T) {
	if emptyAsNA("") != "n/a" || emptyAsNA("abc") != "abc" {
		t.Fatalf("emptyAsNA mismatch")
	}
}

func TestCLI_Doctor(t *testing.T) {
	out, err := runCLI(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	for _, want := range []string{"built-in table: 29 properties", "2 types", "all checks passed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("doctor output missing %q:\n%s", want, out)
		}
	}
}
