package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion is the current journal schema version.
const SchemaVersion = 1

// ErrPersistenceClosed is returned when operations are attempted on a closed file.
var ErrPersistenceClosed = errors.New("journal file is closed")

// schemaHeader is the first line of the JSONL file.
type schemaHeader struct {
	AngeluiSchemaVersion int   `json:"angelui_schema_version"`
	CreatedAt            int64 `json:"created_at"`
}

// File is the JSONL backing file for the journal.
type File struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	closed bool
}

// OpenFile opens (or creates) the journal file at path.
func OpenFile(path string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	f := &File{path: path, file: file}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if info.Size() == 0 {
		if err := f.writeHeader(); err != nil {
			file.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeHeader writes the schema version header line.
func (f *File) writeHeader() error {
	header := schemaHeader{
		AngeluiSchemaVersion: SchemaVersion,
		CreatedAt:            time.Now().Unix(),
	}

	data, err := json.Marshal(header)
	if err != nil {
		return err
	}

	_, err = f.file.Write(append(data, '\n'))
	return err
}

// Load reads all entries from the file. Malformed lines are skipped.
func (f *File) Load() ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.file == nil {
		return nil, ErrPersistenceClosed
	}

	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", f.path, err)
	}

	var entries []Entry
	scanner := bufio.NewScanner(f.file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		// First line is the header
		if lineNum == 1 {
			var header schemaHeader
			if err := json.Unmarshal(line, &header); err == nil && header.AngeluiSchemaVersion > 0 {
				if header.AngeluiSchemaVersion > SchemaVersion {
					return nil, fmt.Errorf("unsupported schema version %d (max: %d)",
						header.AngeluiSchemaVersion, SchemaVersion)
				}
				continue
			}
			// Not a header, fall through and try as an entry
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			// Skip malformed lines
			continue
		}
		if e.Validate() == nil {
			entries = append(entries, e)
		}
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading file: %w", err)
	}

	// Seek back to end for appending
	if _, err := f.file.Seek(0, io.SeekEnd); err != nil {
		return entries, err
	}

	return entries, nil
}

// Append adds an entry to the file.
func (f *File) Append(e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.file == nil {
		return ErrPersistenceClosed
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	if _, err := f.file.Write(append(data, '\n')); err != nil {
		return err
	}
	return f.file.Sync()
}

// Rewrite replaces the entire file with the given entries (used after prune).
func (f *File) Rewrite(entries []Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrPersistenceClosed
	}

	if f.file != nil {
		if err := f.file.Close(); err != nil {
			return err
		}
		f.file = nil
	}

	// Keep a backup until the new file is written out
	backupPath := f.path + ".bak"
	if err := os.Rename(f.path, backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		os.Rename(backupPath, f.path)
		return fmt.Errorf("failed to create new file: %w", err)
	}
	f.file = file

	if err := f.writeHeader(); err != nil {
		return err
	}

	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := f.file.Write(append(data, '\n')); err != nil {
			return err
		}
	}

	if err := f.file.Sync(); err != nil {
		return err
	}

	os.Remove(backupPath)
	return nil
}

// Close releases the file handle.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}
