package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
)

const sampleDump = `types:
  - identifier: Object
    description: Object data-block
    properties:
      - identifier: location
        description: Location of the object
        type: FLOAT
        array_length: 3
      - identifier: data
        type: POINTER
        fixed_type: ID
        is_readonly: true
      - identifier: mode
        type: ENUM
        enum_items: [OBJECT, EDIT]
      - identifier: modifiers
        type: COLLECTION
        srna: ObjectModifiers
    functions:
      - identifier: ray_cast
        description: Cast a ray
        parameters:
          - identifier: origin
            type: FLOAT
            array_length: 3
          - identifier: result
            type: BOOLEAN
            is_output: true
  - identifier: ID
    description: Base type
`

func TestLoad_DumpHappyPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	types, err := reg.Types()
	if err != nil {
		t.Fatalf("Types: %v", err)
	}
	if len(types) != 2 || types[0].Identifier != "Object" || types[1].Identifier != "ID" {
		t.Fatalf("unexpected types: %+v", types)
	}
	if types[0].Description != "Object data-block" {
		t.Fatalf("unexpected description: %q", types[0].Description)
	}

	props, err := reg.Properties(types[0])
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}
	if len(props) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(props))
	}
	if props[0].Kind != KindFloat || props[0].ArrayLength != 3 {
		t.Fatalf("location decoded wrong: %+v", props[0])
	}
	if props[1].Kind != KindPointer || props[1].FixedType != "ID" || !props[1].ReadOnly {
		t.Fatalf("data decoded wrong: %+v", props[1])
	}
	if props[2].Kind != KindEnum || len(props[2].EnumItems) != 2 {
		t.Fatalf("mode decoded wrong: %+v", props[2])
	}
	if props[3].Kind != KindCollection || props[3].InnerType != "ObjectModifiers" {
		t.Fatalf("modifiers decoded wrong: %+v", props[3])
	}

	fns, err := reg.Functions(types[0])
	if err != nil {
		t.Fatalf("Functions: %v", err)
	}
	if len(fns) != 1 || len(fns[0].Parameters) != 2 {
		t.Fatalf("unexpected functions: %+v", fns)
	}
	if fns[0].Parameters[0].IsOutput || !fns[0].Parameters[1].IsOutput {
		t.Fatalf("output flags decoded wrong: %+v", fns[0].Parameters)
	}

	if _, err := os.Stat(path + LockSuffix); !os.IsNotExist(err) {
		t.Fatalf("Load must not create a lock file, stat err: %v", err)
	}
}

func TestDecode_JSON(t *testing.T) {
	reg, err := Decode([]byte(`{"types":[{"identifier":"Scene","properties":[{"identifier":"frame_current","type":"INT"}]}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	props, err := reg.Properties(Type{Identifier: "Scene"})
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}
	if len(props) != 1 || props[0].Kind != KindInt {
		t.Fatalf("unexpected props: %+v", props)
	}
}

func TestDecode_RejectsTypeWithoutIdentifier(t *testing.T) {
	if _, err := Decode([]byte("types:\n  - description: nameless\n")); err == nil {
		t.Fatalf("expected error for type without identifier")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing dump")
	}
}

func TestLoad_ReadOnlyDirWithoutLockFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if _, err := Load(context.Background(), path); err != nil {
		t.Fatalf("Load from read-only dir: %v", err)
	}
}

func TestLoad_SharedLockWhenLockFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path+LockSuffix, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// Another reader does not block.
	other := flock.New(path + LockSuffix)
	if ok, err := other.TryRLock(); err != nil || !ok {
		t.Fatalf("TryRLock: %v %v", ok, err)
	}
	defer func() { _ = other.Unlock() }()

	if _, err := LoadWait(context.Background(), path, time.Second); err != nil {
		t.Fatalf("LoadWait: %v", err)
	}
}

func TestLoad_ExclusiveLockTimesOut(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	writer := flock.New(path + LockSuffix)
	if ok, err := writer.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock: %v %v", ok, err)
	}
	defer func() { _ = writer.Unlock() }()

	start := time.Now()
	_, err := LoadWait(context.Background(), path, 300*time.Millisecond)
	if !errors.Is(err, ErrDumpBusy) {
		t.Fatalf("expected ErrDumpBusy, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("LoadWait did not honour its wait: %s", elapsed)
	}
}
