package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/models"
	"github.com/discool/storefront/internal/utils/response"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey struct{}

// SessionStore is satisfied by the redis-backed session repository.
type SessionStore interface {
	GetSession(ctx context.Context, id string) (*models.Session, bool, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type SessionMiddleware struct {
	store SessionStore
	cfg   config.Session
	locks *sessionLocks
}

func NewSessionMiddleware(store SessionStore, cfg config.Session) *SessionMiddleware {
	return &SessionMiddleware{store: store, cfg: cfg, locks: newSessionLocks()}
}

// Handle loads the shopper's session, holds its lock for the whole request and persists it afterwards.
// Requests of one session therefore run one at a time; different sessions run in parallel.
func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		id := m.sessionID(r)

		release, err := m.locks.acquire(r.Context(), id)
		if err != nil {
			logger.Warn("Request cancelled while waiting for session", slog.String("error", err.Error()))
			return
		}
		defer release()

		session, found, err := m.store.GetSession(r.Context(), id)
		if err != nil {
			logger.Error("Failed to load session", slog.String("error", err.Error()))
			response.Error(w, errors.InternalError("Não foi possível carregar sua sessão. Tente novamente.").WithError(err))
			return
		}

		if !found {
			session = models.NewSession(id)
		}

		sessionLogger := logger.With(slog.String("session_id", id))
		if session.Authenticated() {
			sessionLogger = sessionLogger.With(slog.String("customer_id", session.CustomerID()))
		}

		ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
		ctx = WithLogger(ctx, sessionLogger)

		sw := &sessionWriter{ResponseWriter: w, announce: func() { m.announce(w, session) }}
		next.ServeHTTP(sw, r.WithContext(ctx))
		sw.once.Do(sw.announce)

		// The shopper may have gone away; what the handler did to the session still has to be recorded.
		storeCtx := context.WithoutCancel(r.Context())

		if session.ID != id {
			if err := m.store.DeleteSession(storeCtx, id); err != nil {
				sessionLogger.Error("Failed to delete rotated session", slog.String("error", err.Error()))
			}
			sessionLogger.Info("Session rotated", slog.String("new_session_id", session.ID))
		}

		if err := m.store.SaveSession(storeCtx, session); err != nil {
			sessionLogger.Error("Failed to save session", slog.String("error", err.Error()))
		}
	})
}

// announce hands the session id to the client, switching to a fresh id first when one was requested.
func (m *SessionMiddleware) announce(w http.ResponseWriter, session *models.Session) {
	if session.RotationRequested() {
		session.ID = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(SessionHeader, session.ID)
}

// sessionWriter delays the session cookie until the handler starts its response.
type sessionWriter struct {
	http.ResponseWriter
	once     sync.Once
	announce func()
}

func (sw *sessionWriter) WriteHeader(code int) {
	sw.once.Do(sw.announce)
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	sw.once.Do(sw.announce)
	return sw.ResponseWriter.Write(b)
}

func (m *SessionMiddleware) sessionID(r *http.Request) string {
	candidate := r.Header.Get(SessionHeader)

	if candidate == "" {
		if cookie, err := r.Cookie(m.cfg.CookieName); err == nil {
			candidate = cookie.Value
		}
	}

	if parsed, err := uuid.Parse(candidate); err == nil {
		return parsed.String()
	}

	return uuid.NewString()
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*models.Session)
	return session, ok && session != nil
}

// WithSession is used by tests and by code that runs outside the HTTP chain.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

type sessionLock struct {
	ch   chan struct{}
	refs int
}

type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (l *sessionLocks) acquire(ctx context.Context, id string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sessionLock{ch: make(chan struct{}, 1)}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.ch <- struct{}{}:
		return func() {
			<-lock.ch
			l.forget(id, lock)
		}, nil
	case <-ctx.Done():
		l.forget(id, lock)
		return nil, ctx.Err()
	}
}

func (l *sessionLocks) forget(id string, lock *sessionLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, id)
	}
}
