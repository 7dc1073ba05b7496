package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dias012rrr/fooddelivery/internal/application/cart"
	"github.com/dias012rrr/fooddelivery/internal/application/catalog"
)

const sessionCookie = "storefront_sid"

// browserSession is the per-browser page state: the cart and the catalog
// engine with its paging parameters. It is in-memory only — restarting the
// server or expiring the session discards the cart, matching the original
// page-session lifetime.
//
// Fiber handlers run concurrently, so each session carries its own lock;
// handlers hold it across a whole read-mutate-render step.
type browserSession struct {
	ID       string
	Cart     *cart.Cart
	Engine   *catalog.Engine
	lastSeen time.Time

	mu sync.Mutex
}

// Lock serializes handler access to this session's state.
func (s *browserSession) Lock()   { s.mu.Lock() }
func (s *browserSession) Unlock() { s.mu.Unlock() }

// SessionRegistry hands out browser sessions keyed by a cookie.
type SessionRegistry struct {
	mu        sync.Mutex
	sessions  map[string]*browserSession
	ttl       time.Duration
	pageSize  int
	lastPrune time.Time
}

// NewSessionRegistry builds the registry. Sessions idle longer than ttl
// are dropped.
func NewSessionRegistry(pageSize int, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*browserSession),
		ttl:      ttl,
		pageSize: pageSize,
	}
}

// Middleware attaches the browser session to the request context, issuing
// the cookie on first contact.
func (r *SessionRegistry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(sessionCookie)
		sess := r.lookup(id)
		if sess == nil {
			sess = r.create()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// session returns the request's browser session.
func session(c *fiber.Ctx) *browserSession {
	return c.Locals(sessionKey).(*browserSession)
}

func (r *SessionRegistry) lookup(id string) *browserSession {
	if id == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil
	}
	sess.lastSeen = time.Now()
	return sess
}

func (r *SessionRegistry) create() *browserSession {
	sess := &browserSession{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		Engine:   catalog.NewEngine(r.pageSize),
		lastSeen: time.Now(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = sess
	r.pruneLocked()
	return sess
}

// pruneLocked drops idle sessions; throttled so session creation stays cheap.
func (r *SessionRegistry) pruneLocked() {
	now := time.Now()
	if now.Sub(r.lastPrune) < time.Minute {
		return
	}
	r.lastPrune = now
	for id, sess := range r.sessions {
		if now.Sub(sess.lastSeen) > r.ttl {
			delete(r.sessions, id)
		}
	}
}
