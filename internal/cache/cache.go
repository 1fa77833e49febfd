// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cache stores translated functions on disk, keyed by a digest of
// everything that influences the output.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is bumped whenever Entry or Input changes shape.
const schemaVersion uint16 = 2

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// String returns the hex form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Input is everything that determines the translation of one function.
type Input struct {
	// Version is the shadergen release.
	Version string

	Dialect     string
	Identifiers string
	Indent      string

	// Types and Functions are the project overrides applied to the
	// backend. Function keys are "Type.Method".
	Types     map[string]string
	Functions map[string]string

	// Name is the generated function name.
	Name string

	// Signature and Body are the Canonical forms of the descriptor and of
	// the lowered body with its bound symbols: exactly what the translator
	// consumes, after constant folding and type resolution.
	Signature any
	Body      any
}

// Key returns the digest of in. Map entries are hashed in key order.
func Key(in *Input) (Digest, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.EncodeUint16(schemaVersion); err != nil {
		return Digest{}, err
	}
	if err := enc.Encode(in); err != nil {
		return Digest{}, fmt.Errorf("cache: encode key: %w", err)
	}
	return sha256.Sum256(buf.Bytes()), nil
}

// Entry is one cached translation.
type Entry struct {
	Schema   uint16
	Function string
	Output   string

	// Size is len(Output), checked on read to detect truncated files.
	Size uint32
}

// DiskCache is a directory of msgpack-encoded entries.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Open creates dir if needed and returns a cache rooted there.
func Open(dir string) (*DiskCache, error) {
	if dir == "" {
		return nil, errors.New("cache: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put stores the output for key. The file is written to a temporary name
// and renamed into place.
func (c *DiskCache) Put(key Digest, function, output string) error {
	if c == nil {
		return nil
	}
	size, err := safecast.Conv[uint32](len(output))
	if err != nil {
		return fmt.Errorf("cache: output of %s too large: %w", function, err)
	}
	entry := &Entry{
		Schema:   schemaVersion,
		Function: function,
		Output:   output,
		Size:     size,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	tmp := f.Name()

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: encode %s: %w", function, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: %w", err)
	}
	return nil
}

// Get returns the cached entry for key. Entries of another schema version
// or with a size mismatch are reported as misses.
func (c *DiskCache) Get(key Digest) (*Entry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: %w", err)
	}

	var entry Entry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	if entry.Schema != schemaVersion {
		return nil, false, nil
	}
	if size, err := safecast.Conv[uint32](len(entry.Output)); err != nil || size != entry.Size {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Clear removes every entry.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	return nil
}
