package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type fakeConsumer struct {
	consumed chan struct{}
	closed   bool
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	close(c.consumed)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.closed = true
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

func TestRoutes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		name string
		path string
		code int
	}{
		{name: "registered handler", path: "/ping", code: http.StatusOK},
		{name: "metrics", path: "/metrics", code: http.StatusOK},
		{name: "unknown route", path: "/nope", code: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestStartStop(t *testing.T) {
	a := newTestApp()

	started := 0
	consumer := &fakeConsumer{consumed: make(chan struct{})}
	closed := false

	a.SetStarters(
		starterFunc(func(context.Context) error { started++; return nil }),
	)
	a.SetConsumers(consumer)
	a.SetClosers(closerFunc(func() error { closed = true; return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	<-consumer.consumed

	require.NoError(t, a.Stop())
	assert.Equal(t, 1, started)
	assert.True(t, consumer.closed)
	assert.True(t, closed)
}

func TestStartFailsOnStarterError(t *testing.T) {
	a := newTestApp()
	boom := errors.New("boom")
	a.SetStarters(starterFunc(func(context.Context) error { return boom }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStopJoinsCloserErrors(t *testing.T) {
	a := newTestApp()
	boom := errors.New("boom")
	a.SetClosers(closerFunc(func() error { return boom }))

	assert.ErrorIs(t, a.Stop(), boom)
}
