package a11ykit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestOptimizeAsyncRunsOnUpdate(t *testing.T) {
	e := NewEngine()
	root, label := lowContrastScreen()

	done := e.OptimizeAsync(root, OptionsAll)

	select {
	case <-done:
		t.Fatal("work should not run before Update")
	default:
	}
	if label.IsAccessibilityElement {
		t.Fatal("tree mutated before Update")
	}

	if n := e.Update(); n != 1 {
		t.Errorf("Update ran %d units, want 1", n)
	}
	select {
	case <-done:
	default:
		t.Fatal("done should be closed after Update")
	}
	if !label.IsAccessibilityElement {
		t.Error("label should be optimized")
	}
	if n := e.Update(); n != 0 {
		t.Errorf("second Update ran %d units, want 0", n)
	}
}

func TestOptimizeAsyncOrder(t *testing.T) {
	e := NewEngine()
	label := NewLabel("l", "Text")

	e.OptimizeAsync(label, OptionVoiceOver)
	e.OptimizeAsync(label, OptionDynamicType)
	e.Update()

	first, _ := e.undo.Pop()
	second, _ := e.undo.Pop()
	if first.Applied != OptionDynamicType || second.Applied != OptionVoiceOver {
		t.Errorf("applied order = %v, %v", second.Applied, first.Applied)
	}
}

func TestOptimizeAsyncConcurrentSubmit(t *testing.T) {
	e := NewEngine()
	const workers = 8

	var wg sync.WaitGroup
	dones := make([]<-chan struct{}, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dones[i] = e.OptimizeAsync(NewLabel("l", "Text"), OptionVoiceOver)
		}()
	}
	wg.Wait()

	if n := e.Update(); n != workers {
		t.Errorf("Update ran %d units, want %d", n, workers)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, done := range dones {
		if err := Wait(ctx, done); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	if e.UndoDepth() != workers {
		t.Errorf("UndoDepth = %d, want %d", e.UndoDepth(), workers)
	}
}

func TestOptimizeAsyncWorkQueuedDuringUpdate(t *testing.T) {
	e := NewEngine()
	label := NewLabel("l", "Text")
	var nested <-chan struct{}

	e.queue.push(func() {
		nested = e.OptimizeAsync(label, OptionVoiceOver)
	})

	if n := e.Update(); n != 1 {
		t.Fatalf("Update ran %d units, want 1", n)
	}
	if label.IsAccessibilityElement {
		t.Error("work submitted during Update should wait for the next call")
	}
	if n := e.Update(); n != 1 {
		t.Fatalf("Update ran %d units, want 1", n)
	}
	if err := Wait(context.Background(), nested); err != nil {
		t.Fatal(err)
	}
}

func TestWaitCancelled(t *testing.T) {
	e := NewEngine()
	done := e.OptimizeAsync(NewContainer("root"), OptionsAll)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Wait(ctx, done); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestWaitFromAnotherGoroutine(t *testing.T) {
	e := NewEngine()
	done := e.OptimizeAsync(NewContainer("root"), OptionsAll)

	errc := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errc <- Wait(ctx, done)
	}()

	e.Update()
	if err := <-errc; err != nil {
		t.Errorf("Wait = %v", err)
	}
}
