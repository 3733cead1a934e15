package worldedit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Store reads and writes the world layout document at a fixed path.
type Store struct {
	Path string
	// Backups is how many rotated pre-save backups to keep next to the
	// layout. Zero disables backups.
	Backups int
}

// Load reads the layout. A missing file yields a fresh default layout with
// fresh=true, telling the caller the next save will create the file. A
// corrupt or unreadable file also yields the default, plus the underlying
// error so it can be surfaced; the editor keeps running either way.
func (s *Store) Load() (*WorldLayout, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewWorldLayout(), true, nil
		}
		return NewWorldLayout(), true, fmt.Errorf("read layout: %w", err)
	}
	var w WorldLayout
	if err := json.Unmarshal(data, &w); err != nil {
		return NewWorldLayout(), true, fmt.Errorf("parse layout %s: %w", s.Path, err)
	}
	if err := ValidateLayoutBytes(data); err != nil {
		log.Printf("layout %s failed schema validation: %v", s.Path, err)
	}
	w.Normalize()
	return &w, false, nil
}

// Save stamps the modification metadata and writes the layout, creating
// parent directories as needed. The previous file contents go into the
// backup rotation first; a failed backup only logs, it never blocks the save.
func (s *Store) Save(w *WorldLayout) error {
	w.Metadata.LastModified = time.Now().UTC()
	w.Metadata.ModifiedBy = "EditMode"
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create layout dir: %w", err)
		}
	}
	if err := s.backup(); err != nil {
		log.Printf("layout backup failed: %v", err)
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create layout: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		f.Close()
		return fmt.Errorf("write layout: %w", err)
	}
	return f.Close()
}

// backup compresses the current on-disk layout into backups/ next to it and
// prunes the rotation down to Backups entries.
func (s *Store) backup() error {
	if s.Backups <= 0 {
		return nil
	}
	prev, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	dir := filepath.Join(filepath.Dir(s.Path), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
	stamp := time.Now().UTC().Format("20060102T150405.000")
	name := fmt.Sprintf("%s-%s.json.zst", base, stamp)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	zw, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return err
	}
	if _, err := zw.Write(prev); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.pruneBackups(dir, base)
}

func (s *Store) pruneBackups(dir, base string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), base+"-") && strings.HasSuffix(e.Name(), ".json.zst") {
			names = append(names, e.Name())
		}
	}
	// The timestamp format is fixed width, so lexical order is age order.
	sort.Strings(names)
	for len(names) > s.Backups {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			return err
		}
		names = names[1:]
	}
	return nil
}

// ReadBackup decompresses one rotation entry, mostly for tooling and tests.
func ReadBackup(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", path, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress backup %s: %w", path, err)
	}
	return out, nil
}
