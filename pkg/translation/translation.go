package translation

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type Client interface {
	Translate(ctx context.Context, texts []string, target string, opts ...Option) (*Result, error)
}

// Translator is the subset of *translate.Client the Google client relies on.
type Translator interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
}

type Option func(*translate.Options) error

// LanguageError reports a language tag that couldn't be parsed. It is
// returned before any call to the API is made.
type LanguageError struct {
	// Field is either "source" or "target".
	Field string
	Lang  string
	Err   error
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("parse %s language %q: %s", e.Field, e.Lang, e.Err)
}

func (e *LanguageError) Unwrap() error {
	return e.Err
}

// WithSource skips language detection and translates from lang.
func WithSource(lang string) Option {
	return func(o *translate.Options) error {
		tag, err := language.Parse(lang)
		if err != nil {
			return &LanguageError{Field: "source", Lang: lang, Err: err}
		}

		o.Source = tag
		return nil
	}
}

// WithFormat tells the API whether inputs are "text" or "html".
func WithFormat(format string) Option {
	return func(o *translate.Options) error {
		o.Format = translate.Format(format)
		return nil
	}
}

// WithModel picks the translation model, "base" or "nmt".
func WithModel(model string) Option {
	return func(o *translate.Options) error {
		o.Model = model
		return nil
	}
}

// NewGoogleClientFromCredentialsFile authenticates with the service account
// file at path. Nothing is read from the process environment.
func NewGoogleClientFromCredentialsFile(ctx context.Context, path string) (*gtc, error) {
	return NewGoogleClient(ctx, option.WithCredentialsFile(path))
}

func NewGoogleClient(ctx context.Context, opts ...option.ClientOption) (*gtc, error) {
	c, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate client: %w", err)
	}

	return &gtc{t: c, closer: c.Close}, nil
}

// NewClient wraps an already configured Translator.
func NewClient(t Translator) *gtc {
	return &gtc{t: t}
}

type gtc struct {
	t      Translator
	closer func() error
}

var _ Client = (*gtc)(nil)

func (c *gtc) Translate(ctx context.Context, texts []string, target string, opts ...Option) (*Result, error) {
	tag, err := language.Parse(target)
	if err != nil {
		return nil, &LanguageError{Field: "target", Lang: target, Err: err}
	}

	var options translate.Options
	for _, f := range opts {
		if err := f(&options); err != nil {
			return nil, err
		}
	}

	res, err := c.t.Translate(ctx, texts, tag, &options)
	if err != nil {
		return nil, err
	}

	return NewResult(texts, res), nil
}

func (c *gtc) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer()
}
