package clientstate

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryKV is an in-process KV for tests and offline use. Values go through
// JSON the same way the redis implementation stores them, so both restore
// identically.
type memoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKV() KV {
	return &memoryKV{values: map[string][]byte{}}
}

func (kv *memoryKV) Put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = data
	return nil
}

func (kv *memoryKV) Fetch(ctx context.Context, key string, dest interface{}) error {
	kv.mu.RLock()
	data, ok := kv.values[key]
	kv.mu.RUnlock()

	if !ok {
		return ErrNoValue
	}
	return json.Unmarshal(data, dest)
}

func (kv *memoryKV) Remove(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	return nil
}
