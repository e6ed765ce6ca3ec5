// Package export sends completed results to a spreadsheet web app. The
// transport is simulated: payloads are validated, logged and recorded, but
// no request leaves the machine.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/store"
	"github.com/abhisek/disc/internal/validate"
)

const (
	// DefaultScriptURL is used until a sheet is configured.
	DefaultScriptURL = "https://script.google.com/macros/s/demo-script-id/exec"
	// DefaultToken accompanies DefaultScriptURL.
	DefaultToken = "demo-token"
	// DefaultDelay simulates the request round trip.
	DefaultDelay = time.Second
)

// ErrInvalidScriptURL is returned for URLs outside script.google.com.
var ErrInvalidScriptURL = errors.New("URL must be a valid Google Script URL")

var scriptURLPattern = regexp.MustCompile(`^https://script\.google\.com/.+`)

// ValidateScriptURL checks that url points at a Google Apps Script deployment.
func ValidateScriptURL(url string) error {
	if !scriptURLPattern.MatchString(strings.TrimSpace(url)) {
		return ErrInvalidScriptURL
	}
	return nil
}

// SheetConfig is the target spreadsheet web app.
type SheetConfig struct {
	ScriptURL   string `json:"scriptUrl" mapstructure:"script_url"`
	SecretToken string `json:"secretToken,omitempty" mapstructure:"secret_token"`
}

// DefaultSheetConfig returns the demo configuration.
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{ScriptURL: DefaultScriptURL, SecretToken: DefaultToken}
}

// Payload is the body posted to the sheet.
type Payload struct {
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	Timestamp string      `json:"timestamp"`
	Scores    disc.Scores `json:"scores"`
	Language  string      `json:"language"`
	Token     string      `json:"token,omitempty"`
}

var scoreProperty = map[string]any{"type": "integer", "minimum": 0, "maximum": 100}

// payloadSchema guards the wire format of Payload.
var payloadSchema = &validate.Schema{
	Name: "sheet-payload",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"userId":    map[string]any{"type": "string", "minLength": 1},
			"userName":  map[string]any{"type": "string", "minLength": 1},
			"timestamp": map[string]any{"type": "string", "minLength": 20},
			"scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dominance":  scoreProperty,
					"influence":  scoreProperty,
					"steadiness": scoreProperty,
					"compliance": scoreProperty,
				},
				"required":             []any{"dominance", "influence", "steadiness", "compliance"},
				"additionalProperties": false,
			},
			"language": map[string]any{"type": "string", "enum": []any{"en", "es"}},
			"token":    map[string]any{"type": "string"},
		},
		"required": []any{"userId", "userName", "timestamp", "scores", "language"},
	},
}

// BuildPayload assembles the payload for rec on behalf of user.
func BuildPayload(user *account.User, rec *store.ResultRecord, cfg SheetConfig, now time.Time) *Payload {
	lang := rec.Language
	if lang == "" {
		lang = "en"
	}
	return &Payload{
		UserID:    user.ID,
		UserName:  rec.UserName,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Scores:    rec.Scores,
		Language:  lang,
		Token:     cfg.SecretToken,
	}
}

// PayloadError is returned when a payload does not match the wire schema.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string { return "export payload: " + e.Err.Error() }

func (e *PayloadError) Unwrap() error { return e.Err }

// ValidatePayload checks p against the wire schema.
func ValidatePayload(p *Payload) error {
	if err := validate.Value(payloadSchema, p); err != nil {
		return &PayloadError{Err: err}
	}
	return nil
}

// Settings is the key-value persistence for the sheet configuration.
type Settings interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
}

// Log records export attempts.
type Log interface {
	Append(ctx context.Context, rec *store.ExportRecord) error
}

// Exporter saves results to the configured sheet.
type Exporter struct {
	settings Settings
	log      Log
	logger   *zap.Logger
	delay    time.Duration
	now      func() time.Time
	fallback SheetConfig
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDelay sets the simulated round trip. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(e *Exporter) { e.delay = d }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithFallback sets the configuration used when none has been saved.
func WithFallback(cfg SheetConfig) Option {
	return func(e *Exporter) {
		if cfg.ScriptURL != "" {
			e.fallback = cfg
		}
	}
}

// NewExporter creates an Exporter. log may be nil.
func NewExporter(settings Settings, log Log, opts ...Option) *Exporter {
	e := &Exporter{
		settings: settings,
		log:      log,
		logger:   zap.NewNop(),
		delay:    DefaultDelay,
		now:      time.Now,
		fallback: DefaultSheetConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the saved sheet configuration, or the fallback.
func (e *Exporter) Config(ctx context.Context) (SheetConfig, error) {
	var cfg SheetConfig
	ok, err := e.settings.GetJSON(ctx, store.KeySheetConfig, &cfg)
	if err != nil {
		e.logger.Warn("ignoring stored sheet config", zap.Error(err))
		return e.fallback, nil
	}
	if !ok || cfg.ScriptURL == "" {
		return e.fallback, nil
	}
	return cfg, nil
}

// Configure validates and saves a sheet configuration.
func (e *Exporter) Configure(ctx context.Context, scriptURL, token string) error {
	scriptURL = strings.TrimSpace(scriptURL)
	if err := ValidateScriptURL(scriptURL); err != nil {
		return err
	}
	cfg := SheetConfig{ScriptURL: scriptURL, SecretToken: token}
	if err := e.settings.SetJSON(ctx, store.KeySheetConfig, cfg); err != nil {
		return fmt.Errorf("save sheet config: %w", err)
	}
	e.logger.Info("sheet configured", zap.String("script_url", scriptURL))
	return nil
}

// Export sends rec to the sheet on behalf of user. A nil user yields
// account.ErrNotSignedIn.
func (e *Exporter) Export(ctx context.Context, user *account.User, rec *store.ResultRecord) (*Payload, error) {
	if user == nil {
		return nil, account.ErrNotSignedIn
	}
	if rec == nil {
		return nil, errors.New("no result to export")
	}
	cfg, err := e.Config(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateScriptURL(cfg.ScriptURL); err != nil {
		return nil, err
	}

	p := BuildPayload(user, rec, cfg, e.now())
	if err := ValidatePayload(p); err != nil {
		return nil, err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	e.logger.Info("saving results to sheet",
		zap.String("result_id", rec.UID),
		zap.String("user_id", user.ID),
		zap.String("script_url", cfg.ScriptURL))

	if err := e.wait(ctx); err != nil {
		e.record(ctx, rec, user, cfg, body, err)
		return nil, err
	}
	e.record(ctx, rec, user, cfg, body, nil)
	return p, nil
}

func (e *Exporter) record(ctx context.Context, rec *store.ResultRecord, user *account.User, cfg SheetConfig, body []byte, failure error) {
	if e.log == nil {
		return
	}
	entry := &store.ExportRecord{
		ResultUID: rec.UID,
		UserID:    user.ID,
		ScriptURL: cfg.ScriptURL,
		Status:    store.ExportSucceeded,
		Payload:   string(body),
		CreatedAt: e.now(),
	}
	if failure != nil {
		entry.Status = store.ExportFailed
		entry.Error = failure.Error()
		// The request context may be done; the log write should still land.
		ctx = context.WithoutCancel(ctx)
	}
	if err := e.log.Append(ctx, entry); err != nil {
		e.logger.Warn("recording export failed", zap.Error(err))
	}
}

func (e *Exporter) wait(ctx context.Context) error {
	if e.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
