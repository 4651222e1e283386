package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// LockSuffix is appended to a dump path to name the lock file the host
// exporter holds exclusively while it writes the dump. Exporters that do not
// lock simply never create it.
const LockSuffix = ".lock"

// dumpFile is the on-disk registry dump written by the in-host exporter.
// JSON dumps decode through the same YAML decoder.
type dumpFile struct {
	Types []dumpType `yaml:"types"`
}

type dumpType struct {
	Identifier  string         `yaml:"identifier"`
	Description string         `yaml:"description"`
	Properties  []dumpProperty `yaml:"properties"`
	Functions   []dumpFunction `yaml:"functions"`
}

type dumpProperty struct {
	Identifier  string   `yaml:"identifier"`
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	IsReadonly  bool     `yaml:"is_readonly"`
	FixedType   string   `yaml:"fixed_type"`
	Srna        string   `yaml:"srna"`
	ArrayLength int      `yaml:"array_length"`
	EnumItems   []string `yaml:"enum_items"`
	IsOutput    bool     `yaml:"is_output"`
}

type dumpFunction struct {
	Identifier  string         `yaml:"identifier"`
	Description string         `yaml:"description"`
	Parameters  []dumpProperty `yaml:"parameters"`
}

// DefaultLockWait bounds how long Load waits for an exporter to release the
// dump lock.
const DefaultLockWait = 5 * time.Second

// ErrDumpBusy is returned when the exporter keeps the dump locked past the
// wait.
var ErrDumpBusy = errors.New("registry dump is being written")

// Load reads a registry dump from path, waiting at most DefaultLockWait for
// the exporter's lock.
func Load(ctx context.Context, path string) (*Memory, error) {
	return LoadWait(ctx, path, DefaultLockWait)
}

// LoadWait reads a registry dump from path. When path+LockSuffix exists, the
// read happens under a shared lock on it, waiting at most wait for an
// exclusive holder. Without a lock file the dump is read directly, so dumps
// in read-only locations need no writable sibling.
func LoadWait(ctx context.Context, path string, wait time.Duration) (*Memory, error) {
	lockPath := path + LockSuffix
	if _, err := os.Stat(lockPath); err == nil {
		unlock, err := readLock(ctx, lockPath, wait)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read registry dump %s: %w", path, err)
	}
	return Decode(b)
}

func readLock(ctx context.Context, lockPath string, wait time.Duration) (func(), error) {
	l := flock.New(lockPath, flock.SetFlag(os.O_RDONLY))

	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	locked, err := l.TryRLockContext(waitCtx, 100*time.Millisecond)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (lock %s held for over %s)", ErrDumpBusy, lockPath, wait)
		}
		return nil, fmt.Errorf("cannot lock registry dump %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock %s)", ErrDumpBusy, lockPath)
	}
	return func() { _ = l.Unlock() }, nil
}

// Decode parses a YAML or JSON registry dump.
func Decode(b []byte) (*Memory, error) {
	var d dumpFile
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("invalid registry dump: %w", err)
	}

	types := make([]MemoryType, 0, len(d.Types))
	for i, dt := range d.Types {
		if dt.Identifier == "" {
			return nil, fmt.Errorf("invalid registry dump: type #%d has no identifier", i)
		}
		mt := MemoryType{
			Type: Type{Identifier: dt.Identifier, Description: dt.Description},
		}
		for _, dp := range dt.Properties {
			mt.Properties = append(mt.Properties, dp.toProperty())
		}
		for _, df := range dt.Functions {
			fn := Function{Identifier: df.Identifier, Description: df.Description}
			for _, dp := range df.Parameters {
				fn.Parameters = append(fn.Parameters, Parameter{Property: dp.toProperty(), IsOutput: dp.IsOutput})
			}
			mt.Functions = append(mt.Functions, fn)
		}
		types = append(types, mt)
	}
	return NewMemory(types...), nil
}

func (dp dumpProperty) toProperty() Property {
	p := Property{
		Identifier:  dp.Identifier,
		Description: dp.Description,
		Kind:        ParseKind(dp.Type),
		ReadOnly:    dp.IsReadonly,
		FixedType:   dp.FixedType,
		InnerType:   dp.Srna,
		ArrayLength: dp.ArrayLength,
	}
	if len(dp.EnumItems) > 0 {
		p.EnumItems = append([]string(nil), dp.EnumItems...)
	}
	return p
}
