package bloomtyper

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Checker answers approximate membership queries against a built Bloom
// index. Construction reads only the (class, size) pairs; each filter's
// blob is fetched from the database on first access to that class (spec
// §4.4: "Loaded lazily").
type Checker struct {
	db    *DB
	sizes map[string]int
	mu    sync.Mutex
	cache map[string]*bloom.BloomFilter
}

// NewChecker constructs a Checker, eagerly loading only class sizes.
func NewChecker(ctx context.Context, db *DB) (*Checker, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT predicate, size FROM bloomtyper_index")
	if err != nil {
		return nil, fmt.Errorf("load bloomtyper class sizes: %w", err)
	}
	defer rows.Close()

	sizes := make(map[string]int)
	for rows.Next() {
		var class string
		var size int
		if err := rows.Scan(&class, &size); err != nil {
			return nil, fmt.Errorf("scan bloomtyper class size: %w", err)
		}
		sizes[class] = size
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Checker{
		db:    db,
		sizes: sizes,
		cache: make(map[string]*bloom.BloomFilter),
	}, nil
}

// Size returns the stored approximate cardinality of class, or 0 if class
// is unknown to the index.
func (c *Checker) Size(class string) int {
	return c.sizes[stripAngles(class)]
}

// Check reports whether value is probably a member of class. False
// positives occur at the configured rate; false negatives never do.
func (c *Checker) Check(class, value string) (bool, error) {
	filter, ok, err := c.load(stripAngles(class))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return filter.Test(hashSubject(value)), nil
}

// ClassesOf returns every class whose filter probably contains value.
// Iteration order over classes is undefined (spec §5: "undefined for
// Bloomtyper").
func (c *Checker) ClassesOf(value string) ([]string, error) {
	key := hashSubject(value)
	var classes []string
	for class := range c.sizes {
		filter, ok, err := c.load(class)
		if err != nil {
			return nil, err
		}
		if ok && filter.Test(key) {
			classes = append(classes, class)
		}
	}
	return classes, nil
}

func (c *Checker) load(class string) (*bloom.BloomFilter, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if filter, ok := c.cache[class]; ok {
		return filter, true, nil
	}
	if _, known := c.sizes[class]; !known {
		return nil, false, nil
	}

	var blob []byte
	err := c.db.conn.QueryRow("SELECT bloom FROM bloomtyper_index WHERE predicate = ?", class).Scan(&blob)
	if err != nil {
		return nil, false, fmt.Errorf("load filter blob for %s: %w", class, err)
	}

	filter := &bloom.BloomFilter{}
	if _, err := filter.ReadFrom(bytes.NewReader(blob)); err != nil {
		return nil, false, fmt.Errorf("deserialize filter for %s: %w", class, err)
	}

	c.cache[class] = filter
	return filter, true, nil
}
