package quotestore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/ports"
)

const (
	defaultQuotesDir = "quotes"
	indexFile        = "index.jsonl"
	maxSameSecond    = 1000
)

type JSONStore struct {
	rootDir        string
	quotesDirName  string
	maskingEnabled bool
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: quotes/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.QuotesDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultQuotesDir
	}

	s := &JSONStore{
		rootDir:        root,
		quotesDirName:  dir,
		maskingEnabled: cfg.Masking.Enabled,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.QuoteStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.quotesDirName)
}

func (s *JSONStore) SaveQuotes(a domain.QuoteArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "quotestore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	ts := a.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(a.BatchName)
	if slug == "" {
		slug = slugify(strings.TrimSuffix(filepath.Base(a.BatchPath), filepath.Ext(a.BatchPath)))
	}
	if slug == "" {
		slug = "quotes"
	}

	id, path, err := reserve(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	if err != nil {
		return "", err
	}
	filename := filepath.Base(path)

	toSave := a
	toSave.ID = id
	toSave.StartedAt = ts
	if s.maskingEnabled {
		toSave = maskArtifact(toSave)
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{Op: "quotestore.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{Op: "quotestore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", &domain.OpError{Op: "quotestore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if s.writeIndex {
		_ = s.appendIndex(domain.QuoteRef{
			ID:        id,
			File:      filename,
			Batch:     a.BatchName,
			Tickets:   len(a.Quotes),
			Total:     a.Total,
			StartedAt: ts,
		})
	}

	return id, nil
}

// reserve claims <base>.json in dir, or <base>-2.json, <base>-3.json and so
// on when an artifact with the same second and slug already exists. The
// empty placeholder is replaced by the real artifact via rename.
func reserve(dir, base string) (id, path string, err error) {
	for n := 1; n <= maxSameSecond; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		path = filepath.Join(dir, id+".json")

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			_ = f.Close()
			return id, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", &domain.OpError{Op: "quotestore.reserve", Kind: domain.KindExecution, Path: path, Err: err}
		}
	}
	return "", "", &domain.OpError{
		Op:   "quotestore.reserve",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".json"),
		Err:  fmt.Errorf("more than %d artifacts in one second", maxSameSecond),
	}
}

func (s *JSONStore) appendIndex(ref domain.QuoteRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir(), indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListQuotes returns index entries, newest first. A missing index yields no entries.
func (s *JSONStore) ListQuotes() ([]domain.QuoteRef, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{Op: "quotestore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	var refs []domain.QuoteRef
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var r domain.QuoteRef
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			// Partial lines from an interrupted append are skipped.
			continue
		}
		refs = append(refs, r)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "quotestore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}

	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
	return refs, nil
}

// LoadQuote returns the raw JSON of a stored artifact.
func (s *JSONStore) LoadQuote(id string) ([]byte, error) {
	name := strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, &domain.OpError{
			Op:   "quotestore.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid quote id %q", id),
		}
	}

	path := filepath.Join(s.dir(), name+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: "quotestore.load", Kind: kind, Path: path, Err: err}
	}
	return b, nil
}

// maskArtifact returns a masked copy (does NOT mutate the input).
func maskArtifact(a domain.QuoteArtifact) domain.QuoteArtifact {
	out := a
	out.Quotes = make([]domain.Quote, len(a.Quotes))
	for i, q := range a.Quotes {
		q.PassengerName = maskName(q.PassengerName)
		out.Quotes[i] = q
	}
	return out
}

// maskName keeps the first letter of every word: "Sherman T. Socketwrench" -> "S****** T. S***********".
func maskName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	start := true
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			start = true
			b.WriteRune(r)
		case start:
			start = false
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteByte('*')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
