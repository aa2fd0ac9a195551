// Package testdata is a small API surface loaded by the source provider tests.
package testdata

import (
	"context"
	"io"
	"time"
)

// Color is an enum.
type Color int

const (
	Red Color = iota
	Green
)

// Client talks to a store.
type Client struct {
	Name    string
	Timeout time.Duration
	Tags    map[string][]int
	Updates chan Event
	Created time.Time
	hidden  bool
}

// NewClient constructs a Client.
func NewClient(name string) (*Client, error) {
	return &Client{Name: name}, nil
}

// Get returns the value stored under key.
func (c *Client) Get(ctx context.Context, key string) (value []byte, ok bool) {
	return nil, c.hidden
}

// Each calls fn for every key.
func (c *Client) Each(fn func(string) error) error {
	return nil
}

func (c *Client) reset() {
	c.hidden = false
}

// Event carries an anonymous struct.
type Event struct {
	Point  struct{ X, Y float64 }
	Source io.Reader
}

// Store persists values.
type Store interface {
	Put(key string, value any) error
}

// Box holds one value.
type Box[T any] struct {
	Value T
}

// Get returns the boxed value.
func (b Box[T]) Get() T {
	return b.Value
}

// Counter uses platform-sized integers.
type Counter struct {
	N     int
	U     uint
	Ptr   *int32
	Boxes []Box[string]
}

// Map applies fn to every element.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Version returns the API version.
func Version() string {
	return "1"
}
