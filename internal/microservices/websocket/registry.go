package websocket

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

var (
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrIdentityMismatch = errors.New("token identity does not match requested user")
)

// TokenVerifier resolves a bearer token to the identity it was issued for.
type TokenVerifier interface {
	Identity(token string) (string, error)
}

// Registry maps each authenticated user to at most one live channel.
// Membership means "has an open, authenticated channel right now"; a closed
// channel is represented only by its absence.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client // key: user ID

	verifier TokenVerifier
	upgrader websocket.Upgrader
	logger   *slog.Logger

	writeWait      time.Duration
	pingInterval   time.Duration
	maxMessageSize int64
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

func WithWriteWait(d time.Duration) Option {
	return func(r *Registry) { r.writeWait = d }
}

// WithPingInterval enables liveness probing. Zero keeps probing off.
func WithPingInterval(d time.Duration) Option {
	return func(r *Registry) { r.pingInterval = d }
}

func WithMaxMessageSize(n int64) Option {
	return func(r *Registry) { r.maxMessageSize = n }
}

// WithAllowedOrigins restricts the Origin header accepted at upgrade.
// An empty list or "*" allows every origin.
func WithAllowedOrigins(origins []string) Option {
	return func(r *Registry) {
		if len(origins) == 0 || lo.Contains(origins, "*") {
			return
		}
		r.upgrader.CheckOrigin = func(req *http.Request) bool {
			origin := req.Header.Get("Origin")
			return origin == "" || lo.Contains(origins, origin)
		}
	}
}

func NewRegistry(verifier TokenVerifier, opts ...Option) *Registry {
	r := &Registry{
		clients:  make(map[string]*Client),
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:         slog.Default(),
		writeWait:      WriteWait,
		maxMessageSize: MaxMessageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handshake authorizes an inbound connection for claimedUserID and, only on
// success, accepts it and registers the new channel, superseding any
// previous channel of the same user. On failure the peer gets a
// policy-violation close and nothing is registered.
func (r *Registry) Handshake(w http.ResponseWriter, req *http.Request, claimedUserID, token string) (*Client, error) {
	if err := r.authorize(claimedUserID, token); err != nil {
		r.reject(w, req)
		return nil, err
	}

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// the upgrader already answered with an HTTP error
		return nil, err
	}

	client := newClient(claimedUserID, conn, r.writeWait, r.pingInterval, r.maxMessageSize)
	r.register(client)
	return client, nil
}

func (r *Registry) authorize(claimedUserID, token string) error {
	if token == "" {
		return ErrMissingToken
	}
	identity, err := r.verifier.Identity(token)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if identity != claimedUserID {
		return ErrIdentityMismatch
	}
	return nil
}

// reject completes the transport upgrade only to deliver close code 1008:
// the peer sees 101 Switching Protocols followed at once by the close frame.
// gorilla has no way to send a close code without upgrading. The connection
// is never registered and never reaches a read loop.
func (r *Registry) reject(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(r.writeWait))
	_ = conn.Close()
}

func (r *Registry) register(client *Client) {
	r.mu.Lock()
	previous, replaced := r.clients[client.UserID]
	r.clients[client.UserID] = client
	r.mu.Unlock()

	if replaced {
		// the older channel stays open but is no longer reachable for delivery
		r.logger.Info("client_replaced",
			"user_id", client.UserID,
			"client_id", client.ID,
			"previous_client_id", previous.ID,
		)
		return
	}
	r.logger.Info("client_registered",
		"user_id", client.UserID,
		"client_id", client.ID,
	)
}

// Release removes the entry for client.UserID only if it still points at
// this client, so a late teardown cannot evict a newer replacement.
// It reports whether an entry was removed and is safe to call repeatedly.
func (r *Registry) Release(client *Client) bool {
	if client == nil {
		return false
	}

	r.mu.Lock()
	current, ok := r.clients[client.UserID]
	removed := ok && current == client
	if removed {
		delete(r.clients, client.UserID)
	}
	r.mu.Unlock()

	if removed {
		r.logger.Info("client_released",
			"user_id", client.UserID,
			"client_id", client.ID,
		)
	}
	return removed
}

// Serve runs the keep-alive loop of a registered client and releases it once
// the transport closes. It blocks for the lifetime of the connection.
func (r *Registry) Serve(client *Client) {
	defer client.Close()
	defer r.Release(client)

	err := client.ReadPump()
	if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		r.logger.Warn("client_read_error",
			"user_id", client.UserID,
			"client_id", client.ID,
			"error", err.Error(),
		)
		return
	}
	r.logger.Info("client_disconnected",
		"user_id", client.UserID,
		"client_id", client.ID,
	)
}

// Lookup returns the live channel of userID, if any.
func (r *Registry) Lookup(userID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[userID]
	return client, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// ConnectedUsers returns the sorted IDs of users with a live channel.
func (r *Registry) ConnectedUsers() []string {
	r.mu.RLock()
	users := lo.Keys(r.clients)
	r.mu.RUnlock()
	sort.Strings(users)
	return users
}

// CloseAll sends a going-away close to every registered channel. Each
// channel's keep-alive loop then releases its own entry.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	clients := lo.Values(r.clients)
	r.mu.RUnlock()

	for _, client := range clients {
		client.CloseWith(websocket.CloseGoingAway, "server shutting down")
	}
	r.logger.Info("all_clients_closed", "count", len(clients))
}
