// Package context provides the request context of exprvar.
package context

import (
	"context"

	"go.uber.org/zap"

	"github.com/scenarigo/exprvar"
	"github.com/scenarigo/exprvar/color"
	"github.com/scenarigo/exprvar/vars"
)

type (
	keyVars        struct{}
	keyLogger      struct{}
	keyColorConfig struct{}
)

// Context represents a request context.
// Copies derived from a Context share its variable store.
type Context struct {
	ctx    context.Context
	reqCtx context.Context
}

// New returns a new request context with an empty variable store.
func New(reqCtx context.Context) *Context {
	if reqCtx == nil {
		reqCtx = context.Background()
	}
	return newContext(context.WithValue(context.Background(), keyVars{}, vars.New()), reqCtx)
}

func newContext(ctx, reqCtx context.Context) *Context {
	return &Context{
		ctx:    ctx,
		reqCtx: reqCtx,
	}
}

// WithRequestContext returns a copy of c with reqCtx.
func (c *Context) WithRequestContext(reqCtx context.Context) *Context {
	return newContext(c.ctx, reqCtx)
}

// RequestContext returns the context.Context of the request.
func (c *Context) RequestContext() context.Context {
	return c.reqCtx
}

// WithVars returns a copy of c with the variable store v.
func (c *Context) WithVars(v *vars.Vars) *Context {
	if v == nil {
		return c
	}
	return newContext(context.WithValue(c.ctx, keyVars{}, v), c.reqCtx)
}

// Vars returns the variable store.
func (c *Context) Vars() *vars.Vars {
	v, _ := c.ctx.Value(keyVars{}).(*vars.Vars)
	return v
}

// WithLogger returns a copy of c with l.
func (c *Context) WithLogger(l *zap.Logger) *Context {
	if l == nil {
		return c
	}
	return newContext(context.WithValue(c.ctx, keyLogger{}, l), c.reqCtx)
}

// Logger returns the logger. It never returns nil.
func (c *Context) Logger() *zap.Logger {
	if l, ok := c.ctx.Value(keyLogger{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithColorConfig returns a copy of c with cfg.
func (c *Context) WithColorConfig(cfg *color.Config) *Context {
	if cfg == nil {
		return c
	}
	return newContext(context.WithValue(c.ctx, keyColorConfig{}, cfg), c.reqCtx)
}

// ColorConfig returns the color configuration.
func (c *Context) ColorConfig() *color.Config {
	if cfg, ok := c.ctx.Value(keyColorConfig{}).(*color.Config); ok {
		return cfg
	}
	return color.New()
}

// SetEncodedExpression stores the encoded input into the request variables.
func (c *Context) SetEncodedExpression(input string) error {
	if err := exprvar.SetEncodedExpression(input, c.Vars()); err != nil {
		c.Logger().Debug("failed to set variable", zap.String("key", exprvar.Key), zap.Error(err))
		return err
	}
	v, _ := c.Vars().Get(exprvar.Key)
	c.Logger().Debug("set variable", zap.String("key", exprvar.Key), zap.String("value", v))
	return nil
}
