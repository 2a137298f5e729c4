package database

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn 單一資料庫連線，*pgx.Conn 直接實作此介面
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Provider opens a new connection per call. Callers own the returned Conn
// and must Close it; WithConn does that for them.
type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
}

// WithConn 取得連線、執行 fn，並在所有路徑（含 panic）上關閉連線
func WithConn(ctx context.Context, p Provider, fn func(Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.WithoutCancel(ctx))
	return fn(conn)
}

type FakeConn struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func(ctx context.Context) error
}

func (f *FakeConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeConn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeConn) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeConn) Close(ctx context.Context) error {
	if f.CloseFn != nil {
		return f.CloseFn(ctx)
	}
	return nil
}

// FakeProvider hands out Conn (or fails with Err) and counts opens and
// closes so tests can assert that every connection was released.
type FakeProvider struct {
	Conn *FakeConn
	Err  error

	mu     sync.Mutex
	opened int
	closed int
}

func (f *FakeProvider) Acquire(ctx context.Context) (Conn, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	conn := f.Conn
	if conn == nil {
		conn = &FakeConn{}
	}
	f.mu.Lock()
	f.opened++
	f.mu.Unlock()
	return &countingConn{FakeConn: conn, p: f}, nil
}

// Opened returns how many connections were handed out.
func (f *FakeProvider) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}

// Closed returns how many handed-out connections were closed.
func (f *FakeProvider) Closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

type countingConn struct {
	*FakeConn
	p *FakeProvider
}

func (c *countingConn) Close(ctx context.Context) error {
	c.p.mu.Lock()
	c.p.closed++
	c.p.mu.Unlock()
	return c.FakeConn.Close(ctx)
}
