package glossary

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"
)

//go:embed seeds/default.yaml
var defaultSeed []byte

type seedFile struct {
	Terms []Entry `yaml:"terms"`
}

// SeedLoader reads seed entries from the embedded default set, a local file or an http(s) URL.
type SeedLoader struct {
	httpClient *resty.Client
}

func NewSeedLoader() *SeedLoader {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(res *resty.Response, err error) bool {
			return err != nil || res.StatusCode() >= http.StatusInternalServerError
		})
	return &SeedLoader{httpClient: client}
}

func (l *SeedLoader) Close() error {
	l.httpClient.GetClient().CloseIdleConnections()
	return nil
}

// Load returns the entries from source. An empty source means the embedded default set.
func (l *SeedLoader) Load(ctx context.Context, source string) ([]Entry, error) {
	var (
		contents []byte
		err      error
	)
	switch {
	case source == "":
		contents = defaultSeed
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		contents, err = l.fetch(ctx, source)
	default:
		contents, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("os.ReadFile(%s) > %w", source, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return ParseSeed(contents)
}

func (l *SeedLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := l.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/yaml, text/yaml, */*").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get(%s) > %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// ParseSeed decodes a YAML document with a top-level terms list.
func ParseSeed(contents []byte) ([]Entry, error) {
	var file seedFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	for i, e := range file.Terms {
		if e.Term == "" || e.Definition == "" || e.Category == "" {
			return nil, fmt.Errorf("seed entry #%d: term, definition and category are required", i+1)
		}
	}
	return file.Terms, nil
}

// Seed creates each entry that does not exist yet and returns how many were created.
func Seed(ctx context.Context, repo Repository, entries []Entry) (int, error) {
	created := 0
	for _, e := range entries {
		if _, err := repo.Create(ctx, e); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				slog.Debug("seed entry already exists", "term", e.Term)
				continue
			}
			return created, fmt.Errorf("repo.Create(%s) > %w", e.Term, err)
		}
		created++
	}
	return created, nil
}
