package mock

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/centraunit/digo"
)

// Core interfaces
type Database interface {
	Connect() error
	IsConnected() bool
	Close() error
}

type Cache interface {
	Get(key string) interface{}
	DB() Database
}

// Mock implementations
type MockDB struct {
	Name        string
	isConnected bool
	closed      atomic.Bool
}

func NewMockDB() *MockDB {
	return &MockDB{isConnected: true}
}

func (m *MockDB) Connect() error {
	m.isConnected = true
	return nil
}

func (m *MockDB) IsConnected() bool {
	return m.isConnected
}

func (m *MockDB) Close() error {
	m.isConnected = false
	m.closed.Store(true)
	return nil
}

func (m *MockDB) Closed() bool {
	return m.closed.Load()
}

type MockCache struct {
	db Database
}

// NewMockCache resolves its Database from the resolver it is built from.
func NewMockCache(r *digo.Resolver) (Cache, error) {
	db, err := digo.Resolve[Database](r)
	if err != nil {
		return nil, err
	}
	return &MockCache{db: db}, nil
}

func (m *MockCache) Get(key string) interface{} {
	return nil
}

func (m *MockCache) DB() Database {
	return m.db
}

// FailingDB fails to close, used for Close error aggregation
type FailingDB struct {
	MockDB
}

var ErrCloseFailed = errors.New("simulated close failure")

func (f *FailingDB) Close() error {
	return ErrCloseFailed
}

// Counter counts factory invocations
type Counter struct {
	calls atomic.Int64
	Delay time.Duration
}

func (c *Counter) Calls() int64 {
	return c.calls.Load()
}

// DBFactory returns a factory producing a fresh MockDB on each call.
func (c *Counter) DBFactory() func(r *digo.Resolver) (Database, error) {
	return func(r *digo.Resolver) (Database, error) {
		c.calls.Add(1)
		if c.Delay > 0 {
			time.Sleep(c.Delay)
		}
		return NewMockDB(), nil
	}
}

// Deep dependency chain
type DeepService3 interface {
	GetValue() string
}

type DeepService2 interface {
	GetService3() DeepService3
}

type DeepService1 interface {
	GetService2() DeepService2
}

type DeepImpl3 struct {
	Value string
}

func (d *DeepImpl3) GetValue() string {
	return d.Value
}

type DeepImpl2 struct {
	svc3 DeepService3
}

func NewDeepImpl2(r *digo.Resolver) (DeepService2, error) {
	svc3, err := digo.Resolve[DeepService3](r)
	if err != nil {
		return nil, err
	}
	return &DeepImpl2{svc3: svc3}, nil
}

func (d *DeepImpl2) GetService3() DeepService3 {
	return d.svc3
}

type DeepImpl1 struct {
	svc2 DeepService2
}

func NewDeepImpl1(r *digo.Resolver) (DeepService1, error) {
	svc2, err := digo.Resolve[DeepService2](r)
	if err != nil {
		return nil, err
	}
	return &DeepImpl1{svc2: svc2}, nil
}

func (d *DeepImpl1) GetService2() DeepService2 {
	return d.svc2
}

// Unrelated is implemented by nothing registered under it
type Unrelated interface {
	Unrelated()
}
