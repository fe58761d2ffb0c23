package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pram/pkg/journal"
)

// ErrNotFound is returned when no entry exists for the requested day.
var ErrNotFound = errors.New("store: no entry for date")

// Persistence is the host-side entries store: a mapping from ISO date to
// journal entry. The derivation core never touches it; hosts read maps out
// of it and write committed form results back in.
type Persistence interface {
	Map(ctx context.Context) map[string]*journal.Entry
	Month(ctx context.Context, month time.Time) map[string]*journal.Entry
	Get(ctx context.Context, date journal.Date) (*journal.Entry, error)
	Put(e *journal.Entry) error
	Delete(date journal.Date) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*journal.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &journal.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.Date.IsZero() {
		// Older payloads may lack the date field; recover it from the key.
		if d, err := journal.ParseDate(keyToDate(key)); err == nil {
			e.Date = d
		}
	}
	return e, nil
}

func (p *persistence) Map(ctx context.Context) map[string]*journal.Entry {
	all := make(map[string]*journal.Entry)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all[e.Date.String()] = e
	}
	return all
}

func (p *persistence) Month(ctx context.Context, month time.Time) map[string]*journal.Entry {
	prefix := fmt.Sprintf("%s%04d-%02d", keyPrefix, month.Year(), int(month.Month()))
	all := make(map[string]*journal.Entry)
	for key := range p.d.KeysPrefix(prefix, ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all[e.Date.String()] = e
	}
	return all
}

func (p *persistence) Get(_ context.Context, date journal.Date) (*journal.Entry, error) {
	key := toKey(date)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return p.read(key)
}

func (p *persistence) Put(e *journal.Entry) error {
	if e == nil || e.Date.IsZero() {
		return errors.New("store: entry date required")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e.Date), data)
}

func (p *persistence) Delete(date journal.Date) error {
	return p.d.Erase(toKey(date))
}

const keyPrefix = "journal-"

// toKey makes `journal-2006-01-02`; the transform buckets it on disk as
// journal/2006/01/02.
func toKey(date journal.Date) string {
	return keyPrefix + date.String()
}

func keyToDate(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
