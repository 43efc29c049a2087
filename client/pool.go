package client

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// connectionFactory builds pooled clients for one server address
type connectionFactory struct {
	Addr string
}

func (f *connectionFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	c, err := MakeClient(f.Addr)
	if err != nil {
		return nil, err
	}
	c.Start()
	return pool.NewPooledObject(c), nil
}

func (f *connectionFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	c, ok := object.Object.(*Client)
	if !ok {
		return errors.New("type mismatch")
	}
	c.Close()
	return nil
}

func (f *connectionFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	return true
}

func (f *connectionFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *connectionFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

// Pool keeps a set of started clients for one server address
type Pool struct {
	inner *pool.ObjectPool
}

// NewPool creates a client pool for the given address
func NewPool(addr string) *Pool {
	ctx := context.Background()
	return &Pool{
		inner: pool.NewObjectPoolWithDefaultConfig(ctx, &connectionFactory{Addr: addr}),
	}
}

// Borrow takes a client from the pool, blocking until one is available
func (p *Pool) Borrow(ctx context.Context) (*Client, error) {
	raw, err := p.inner.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := raw.(*Client)
	if !ok {
		return nil, errors.New("connection factory make wrong type")
	}
	return c, nil
}

// Return gives a borrowed client back to the pool
func (p *Pool) Return(ctx context.Context, c *Client) error {
	return p.inner.ReturnObject(ctx, c)
}

// Close destroys every pooled client
func (p *Pool) Close(ctx context.Context) {
	p.inner.Close(ctx)
}
