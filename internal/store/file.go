package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
)

// readItems returns an empty slice and no error when the file is absent.
func readItems[T any](path string, codec itemCodec[T]) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, newOpError("load", KindRead, path, err)
	}
	items, _, err := decodeDocument(data, codec)
	if err != nil {
		return nil, newOpError("load", KindDecode, path, err)
	}
	return items, nil
}

// loadItems never fails: unreadable or corrupt files are logged and yield
// an empty collection.
func loadItems[T any](path string, codec itemCodec[T], log logrus.FieldLogger) []T {
	items, err := readItems(path, codec)
	if err != nil {
		log.WithError(err).Error("Failed to load collection; starting empty")
		return []T{}
	}
	log.WithField("count", len(items)).Debug("Collection loaded")
	return items
}

// saveItems rewrites the whole file. Failures are logged and reported in
// the Result, never returned as a panic or abort.
func saveItems[T any](path string, items []T, codec itemCodec[T], log logrus.FieldLogger) Result {
	res := Result{Path: path, Count: len(items), Revision: uuid.NewString()}

	data, err := encodeDocument(items, codec, Meta{
		Storage:   storageName,
		Version:   formatVersion,
		Revision:  res.Revision,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		res.Err = newOpError("save", KindEncode, path, err)
	} else if err := writeAtomic(path, data); err != nil {
		res.Err = newOpError("save", KindWrite, path, err)
	}

	if res.Err != nil {
		log.WithError(res.Err).Error("Failed to persist collection; change kept in memory only")
		return res
	}
	log.WithFields(logrus.Fields{
		"count":    res.Count,
		"revision": res.Revision,
	}).Debug("Collection persisted")
	return res
}

// writeAtomic writes to a temp file in the target directory, syncs it and
// renames it over path, so readers see either the old or the new file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
