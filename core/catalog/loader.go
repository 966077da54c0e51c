package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"intl-sheets/core/reconcile"
	"intl-sheets/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
)

// Loader reads the message catalog from its configured source.
type Loader struct {
	cfg    Config
	client storage.Client
	bucket string
}

// NewLoader creates a new catalog loader. The storage client is only
// required when the source is "storage".
func NewLoader(cfg Config, client storage.Client, bucket string) *Loader {
	return &Loader{
		cfg:    cfg,
		client: client,
		bucket: bucket,
	}
}

// Load reads and parses the catalog.
func (l *Loader) Load(ctx context.Context) ([]reconcile.Message, error) {
	data, err := l.read(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data, l.cfg.Format, l.cfg.Path)
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	switch l.cfg.Source {
	case SourceFile, "":
		data, err := os.ReadFile(l.cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		return data, nil

	case SourceStorage:
		if l.client == nil {
			return nil, fmt.Errorf("catalog source %q requires a storage client", SourceStorage)
		}

		exists, err := l.client.BucketExists(ctx, l.bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", l.bucket)
		}

		obj, err := l.client.GetObject(ctx, l.bucket, l.cfg.Path, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get catalog object: %w", err)
		}
		defer obj.Close()

		data, err := io.ReadAll(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog object: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unsupported catalog source %q", l.cfg.Source)
	}
}

// Parse decodes catalog bytes in the given format. name is used for error
// messages and, for go-i18n files, to detect JSON or TOML from the extension.
func Parse(data []byte, format, name string) ([]reconcile.Message, error) {
	var (
		messages []reconcile.Message
		err      error
	)

	switch format {
	case FormatReactIntl, "":
		messages, err = parseReactIntl(data)
	case FormatGoI18n:
		messages, err = parseGoI18n(data, name)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	if err := validate(messages); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	return messages, nil
}

// reactIntlEntry is one element of a react-intl extraction file.
type reactIntlEntry struct {
	ID             *string `json:"id"`
	DefaultMessage *string `json:"defaultMessage"`
	Message        *string `json:"message"`
}

func parseReactIntl(data []byte) ([]reconcile.Message, error) {
	var entries []reactIntlEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	messages := make([]reconcile.Message, 0, len(entries))
	for i, e := range entries {
		if e.ID == nil {
			return nil, fmt.Errorf("entry %d has no id", i)
		}

		text := e.DefaultMessage
		if text == nil {
			text = e.Message
		}
		if text == nil {
			return nil, fmt.Errorf("entry %q has no defaultMessage", *e.ID)
		}

		messages = append(messages, reconcile.Message{ID: *e.ID, Message: *text})
	}
	return messages, nil
}

// parseGoI18n reads a go-i18n message file. The format has no order, so
// messages are sorted by id to keep appended rows deterministic.
func parseGoI18n(data []byte, name string) ([]reconcile.Message, error) {
	file, err := i18n.ParseMessageFileBytes(data, name, map[string]i18n.UnmarshalFunc{
		"toml": toml.Unmarshal,
	})
	if err != nil {
		return nil, err
	}

	messages := make([]reconcile.Message, 0, len(file.Messages))
	for _, m := range file.Messages {
		text := m.Other
		if text == "" {
			text = m.One
		}
		messages = append(messages, reconcile.Message{ID: m.ID, Message: text})
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID < messages[j].ID
	})
	return messages, nil
}

// validate rejects empty and duplicate ids.
func validate(messages []reconcile.Message) error {
	seen := make(map[string]struct{}, len(messages))
	for i, m := range messages {
		if m.ID == "" {
			return fmt.Errorf("entry %d has an empty id", i)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("%w: %q", reconcile.ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
