// Package kvjson reads and writes whole JSON collections under a single key
// of the keyed store.
package kvjson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/store"
)

// LoadList decodes the JSON array stored under key. A missing key yields an
// empty list. A value that does not decode is logged and also yields an
// empty list, so a corrupt collection degrades instead of failing.
func LoadList[T any](ctx context.Context, s store.Store, log logging.Logger, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn(ctx, "corrupt collection, treating as empty", "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveList encodes items as a JSON array and stores it under key.
func SaveList[T any](ctx context.Context, s store.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
