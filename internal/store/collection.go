package store

import (
	"sync"

	logrus "github.com/sirupsen/logrus"
)

// collection is one in-memory sequence mirrored to one file. The write lock
// is held across append and rewrite so the file always matches memory order.
type collection[T any] struct {
	mu    sync.RWMutex
	path  string
	codec itemCodec[T]
	items []T
	log   logrus.FieldLogger
}

func openCollection[T any](name, path string, codec itemCodec[T], log logrus.FieldLogger) *collection[T] {
	log = log.WithFields(logrus.Fields{"collection": name, "path": path})
	return &collection[T]{
		path:  path,
		codec: codec,
		items: loadItems(path, codec, log),
		log:   log,
	}
}

// add encodes item before appending it: an item that cannot be written is
// rejected and memory is left unchanged, so it cannot block later saves.
func (c *collection[T]) add(item T) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.codec.marshal(item); err != nil {
		res := Result{Path: c.path, Count: len(c.items), Err: newOpError("add", KindEncode, c.path, err)}
		c.log.WithError(res.Err).Error("Rejected item that cannot be encoded")
		return res
	}
	c.items = append(c.items, c.codec.clone(item))
	return saveItems(c.path, c.items, c.codec, c.log)
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.codec.clone(item)
	}
	return out
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
