package context_test

import (
	gocontext "context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/scenarigo/exprvar/color"
	"github.com/scenarigo/exprvar/context"
	"github.com/scenarigo/exprvar/vars"
)

type keyTest struct{}

func TestContext(t *testing.T) {
	t.Run("vars", func(t *testing.T) {
		ctx := context.New(gocontext.Background())
		if ctx.Vars() == nil {
			t.Fatal("new context must have a variable store")
		}
		v := vars.New(vars.Item{Key: "lang", Value: "en"})
		ctx = ctx.WithVars(v)
		if ctx.Vars() != v {
			t.Fatal("failed to get vars")
		}
		if ctx.WithVars(nil).Vars() != v {
			t.Fatal("nil vars must be ignored")
		}
	})
	t.Run("request context", func(t *testing.T) {
		reqCtx := gocontext.WithValue(gocontext.Background(), keyTest{}, "value")
		ctx := context.New(gocontext.TODO()).WithRequestContext(reqCtx)
		if got := ctx.RequestContext().Value(keyTest{}); got != "value" {
			t.Fatalf("unexpected request context value: %v", got)
		}
	})
	t.Run("logger", func(t *testing.T) {
		ctx := context.New(gocontext.Background())
		if ctx.Logger() == nil {
			t.Fatal("logger must not be nil")
		}
		l := zap.NewExample()
		if ctx.WithLogger(l).Logger() != l {
			t.Fatal("failed to get logger")
		}
	})
	t.Run("color config", func(t *testing.T) {
		ctx := context.New(gocontext.Background())
		cfg := color.New()
		cfg.SetEnabled(false)
		if ctx.WithColorConfig(cfg).ColorConfig() != cfg {
			t.Fatal("failed to get color config")
		}
	})
}

func TestContext_SetEncodedExpression(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	v := vars.New(vars.Item{Key: "baseURL", Value: "http://localhost:8000"})
	ctx := context.New(gocontext.Background()).WithVars(v).WithLogger(zap.New(core))

	// derived copies share the store
	child := ctx.WithRequestContext(gocontext.Background())
	if err := child.SetEncodedExpression("a & b"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expect := []vars.Item{
		{Key: "baseURL", Value: "http://localhost:8000"},
		{Key: "expression", Value: "a%20%26%20b"},
	}
	if diff := cmp.Diff(expect, ctx.Vars().Items()); diff != "" {
		t.Errorf("differs (-want +got):\n%s", diff)
	}

	entries := logs.FilterMessage("set variable").All()
	if len(entries) != 1 {
		t.Fatalf("expect 1 log entry but got %d", len(entries))
	}
	if got := entries[0].ContextMap()["value"]; got != "a%20%26%20b" {
		t.Errorf("unexpected logged value: %v", got)
	}
}
