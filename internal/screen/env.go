package screen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/account"
	"github.com/abhisek/disc/internal/export"
	"github.com/abhisek/disc/internal/i18n"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
)

// Env holds the services and preferences shared by every screen. Screens
// keep a pointer to one Env so a language change is seen everywhere.
type Env struct {
	Lang        i18n.Lang
	Session     *session.Session
	Store       *store.Store
	Accounts    *account.Service
	Exporter    *export.Exporter
	Logger      *zap.Logger
	OutputDir   string
	AutoAdvance time.Duration

	// User is the signed-in user, nil when signed out.
	User *account.User
}

// T returns the text for key in the current language.
func (e *Env) T(key i18n.Key) string {
	return i18n.T(e.Lang, key)
}

// Tf formats the text for key in the current language.
func (e *Env) Tf(key i18n.Key, args ...any) string {
	return fmt.Sprintf(i18n.T(e.Lang, key), args...)
}

// SetLang switches the language and stores it as the preference.
func (e *Env) SetLang(ctx context.Context, lang i18n.Lang) error {
	e.Lang = lang
	if e.Session != nil {
		e.Session.SetLanguage(lang.String())
	}
	if e.Store == nil {
		return nil
	}
	if err := e.Store.Settings().Set(ctx, store.KeyLanguage, lang.String()); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}

// Log returns the logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
