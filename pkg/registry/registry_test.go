package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/ruleset/pkg/errors"
)

type testFactory func() any

func TestRegisterAndLookup(t *testing.T) {
	reg := New[string]()

	t.Run("register valid item", func(t *testing.T) {
		if err := reg.Register("LineLength", "ruleset.checks.sizes.LineLengthCheck"); err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", "x")
		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("LineLength", "other")
		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("lookup hit and miss", func(t *testing.T) {
		got, ok := reg.Lookup("LineLength")
		if !ok || got != "ruleset.checks.sizes.LineLengthCheck" {
			t.Errorf("Lookup() = %q, %v", got, ok)
		}
		if _, ok := reg.Lookup("Bogus"); ok {
			t.Error("Lookup() of unknown name should miss")
		}
	})

	t.Run("get miss returns not found", func(t *testing.T) {
		_, err := reg.Get("Bogus")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestRemoveAndClear(t *testing.T) {
	reg := New[int]()
	for i := 0; i < 5; i++ {
		_ = reg.Register(fmt.Sprintf("item%d", i), i)
	}

	if err := reg.Remove("item0"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if reg.Has("item0") {
		t.Error("item should not exist after removal")
	}
	if err := reg.Remove("item0"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Remove() twice should return ErrNotFound, got %v", err)
	}

	reg.Clear()
	if reg.Count() != 0 || len(reg.List()) != 0 {
		t.Errorf("registry should be empty after Clear(), count=%d", reg.Count())
	}
}

func TestList(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		_ = reg.Register(name, i)
	}

	list := reg.List()
	expected := []string{"alpha", "bravo", "charlie"}
	if len(list) != len(expected) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(expected))
	}
	for i, name := range list {
		if name != expected[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, expected[i])
		}
	}
}

func TestFreeze(t *testing.T) {
	reg := New[testFactory]()
	_ = reg.Register("a", func() any { return 1 })
	reg.Freeze()

	if !reg.Frozen() {
		t.Fatal("Frozen() should be true after Freeze()")
	}
	if err := reg.Register("b", func() any { return 2 }); !errors.IsErrorCode(err, errors.ErrFrozen) {
		t.Errorf("Register() on frozen registry should return ErrFrozen, got %v", err)
	}
	if err := reg.Remove("a"); !errors.IsErrorCode(err, errors.ErrFrozen) {
		t.Errorf("Remove() on frozen registry should return ErrFrozen, got %v", err)
	}

	reg.Clear()
	f, ok := reg.Lookup("a")
	if !ok {
		t.Fatal("Clear() must not empty a frozen registry")
	}
	if f() != 1 {
		t.Error("retrieved factory doesn't behave as expected")
	}
}

func TestConcurrentReads(t *testing.T) {
	reg := New[int]()
	for i := 0; i < 100; i++ {
		_ = reg.Register(fmt.Sprintf("item%d", i), i)
	}
	reg.Freeze()

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if v, ok := reg.Lookup(fmt.Sprintf("item%d", i)); !ok || v != i {
					t.Errorf("concurrent Lookup(item%d) = %d, %v", i, v, ok)
				}
			}
		}()
	}
	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "item1", 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()
	MustRegister(reg, "item1", 2)
}

func BenchmarkLookup(b *testing.B) {
	reg := New[int]()
	for i := 0; i < 1000; i++ {
		_ = reg.Register(fmt.Sprintf("item%d", i), i)
	}
	reg.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Lookup("item500")
	}
}
