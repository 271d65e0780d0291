package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEditorHooks{}
	e.OnGraphLoaded(ctx, 3, 2, nil)
	e.OnEdit(ctx, 3)
	e.OnSerialize(ctx, 1024, nil)

	s := NoopStoreHooks{}
	s.OnSave(ctx, "file", "gold", time.Millisecond, nil)
	s.OnLoad(ctx, "redis", "gold", time.Millisecond, nil)
	s.OnDelete(ctx, "memory", "gold", nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", time.Millisecond, nil)
}

type countingEditorHooks struct {
	NoopEditorHooks
	edits int
}

func (h *countingEditorHooks) OnEdit(context.Context, int) { h.edits++ }

func TestSetAndResetHooks(t *testing.T) {
	defer Reset()

	counting := &countingEditorHooks{}
	SetEditorHooks(counting)
	Editor().OnEdit(context.Background(), 1)
	if counting.edits != 1 {
		t.Errorf("edits = %d, want 1", counting.edits)
	}

	// nil registration keeps the current hooks.
	SetEditorHooks(nil)
	Editor().OnEdit(context.Background(), 1)
	if counting.edits != 2 {
		t.Errorf("edits = %d, want 2", counting.edits)
	}

	Reset()
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Errorf("Editor() after Reset = %T, want NoopEditorHooks", Editor())
	}
}
