// Package odoo provides the XML-RPC session to the HR business suite. The
// session authenticates once per process and is reused by every generation
// request; callers receive it by injection rather than through a global.
package odoo

import (
	"context"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Config holds the connection parameters for the record store.
type Config struct {
	URL      string
	Database string
	Username string
	Password string
}

// Executor is the query capability the record layer consumes. It is the
// seam for tests: fakes implement it without any network.
type Executor interface {
	ExecuteKw(ctx context.Context, model, method string, args []interface{}, kw map[string]interface{}) (interface{}, error)
}

// Session is an authenticated connection to the record store. It caches the
// authenticated user id; the underlying client serializes its own calls.
type Session struct {
	db       string
	password string
	uid      int64
	object   *xmlrpc.Client
}

// Connect authenticates against the store and returns a reusable session.
func Connect(cfg Config) (*Session, error) {
	common, err := xmlrpc.NewClient(cfg.URL+"/xmlrpc/2/common", nil)
	if err != nil {
		return nil, &AuthError{Message: "failed to create RPC client", Cause: err}
	}
	defer common.Close()

	var reply interface{}
	err = common.Call("authenticate", []interface{}{cfg.Database, cfg.Username, cfg.Password, map[string]interface{}{}}, &reply)
	if err != nil {
		return nil, &AuthError{Message: "authentication call failed", Cause: err}
	}

	uid, ok := asUID(reply)
	if !ok {
		// The store answers false, not a fault, for bad credentials.
		return nil, &AuthError{Message: "invalid credentials or database name"}
	}

	object, err := xmlrpc.NewClient(cfg.URL+"/xmlrpc/2/object", nil)
	if err != nil {
		return nil, &AuthError{Message: "failed to create RPC client", Cause: err}
	}

	return &Session{
		db:       cfg.Database,
		password: cfg.Password,
		uid:      uid,
		object:   object,
	}, nil
}

func asUID(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, n > 0
	case int:
		return int64(n), n > 0
	case float64:
		return int64(n), n > 0
	default:
		return 0, false
	}
}

// UID returns the authenticated user id.
func (s *Session) UID() int64 {
	return s.uid
}

// ExecuteKw invokes a model method on the store. The context is consulted
// before dispatch; the wire protocol itself has no cancellation semantics.
func (s *Session) ExecuteKw(ctx context.Context, model, method string, args []interface{}, kw map[string]interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := []interface{}{s.db, s.uid, s.password, model, method, args}
	if kw == nil {
		kw = map[string]interface{}{}
	}
	params = append(params, kw)

	var reply interface{}
	if err := s.object.Call("execute_kw", params, &reply); err != nil {
		return nil, fmt.Errorf("%s.%s failed: %w", model, method, err)
	}
	return reply, nil
}

// Close releases the underlying RPC client.
func (s *Session) Close() error {
	return s.object.Close()
}
