package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEnumerationHooks{}
	e.OnEnumerateStart(ctx, "Γ₀(5)")
	e.OnRound(ctx, "Γ₀(5)", 1, 1, 2)
	e.OnEnumerateComplete(ctx, "Γ₀(5)", 6, 7, time.Millisecond, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, []string{"asy"})
	r.OnRenderComplete(ctx, []string{"asy"}, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/domain/gamma0(5).svg")
	h.OnResponse(ctx, "GET", "/domain/gamma0(5).svg", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Enumeration().(NoopEnumerationHooks); !ok {
		t.Error("Enumeration() should return NoopEnumerationHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEnum := &testEnumerationHooks{}
	SetEnumerationHooks(customEnum)
	if Enumeration() != customEnum {
		t.Error("SetEnumerationHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Enumeration().(NoopEnumerationHooks); !ok {
		t.Error("Reset() should restore NoopEnumerationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEnumerationHooks{}
	SetEnumerationHooks(custom)
	SetEnumerationHooks(nil)

	if Enumeration() != custom {
		t.Error("SetEnumerationHooks(nil) should be ignored")
	}

	Reset()
}

type testEnumerationHooks struct{ NoopEnumerationHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
