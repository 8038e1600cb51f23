package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "tree.json")
	p.OnLoadComplete(ctx, "tree.json", 5, time.Second, nil)
	p.OnLayoutStart(ctx, 1024)
	p.OnLayoutComplete(ctx, 1024, time.Second, nil)
	p.OnEmbedStart(ctx, 3)
	p.OnEmbedComplete(ctx, 3, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify default is noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	// Set custom hooks
	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &countingHooks{}
	SetPipelineHooks(custom)

	ctx := context.Background()
	Pipeline().OnLoadStart(ctx, "tree.json")
	Pipeline().OnLoadComplete(ctx, "tree.json", 5, time.Millisecond, nil)
	Pipeline().OnEmbedStart(ctx, 2)
	Pipeline().OnEmbedComplete(ctx, 2, time.Millisecond, nil)

	if custom.loads != 1 {
		t.Errorf("loads = %d, want 1", custom.loads)
	}
	if custom.embeds != 1 {
		t.Errorf("embeds = %d, want 1", custom.embeds)
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }

type countingHooks struct {
	NoopPipelineHooks
	loads  int
	embeds int
}

func (h *countingHooks) OnLoadComplete(_ context.Context, _ string, _ int, _ time.Duration, _ error) {
	h.loads++
}

func (h *countingHooks) OnEmbedComplete(_ context.Context, _ int, _ time.Duration, _ error) {
	h.embeds++
}
