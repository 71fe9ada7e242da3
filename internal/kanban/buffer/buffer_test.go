package buffer

import "testing"

func TestMemory_ApplyNotifies(t *testing.T) {
	buf := NewMemory("hello world")

	var seen []string
	buf.OnChange(func(text string) {
		seen = append(seen, text)
	})

	if err := buf.Apply(NewEdit(Range{0, 5}, "goodbye")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.Text() != "goodbye world" {
		t.Errorf("expected %q, got %q", "goodbye world", buf.Text())
	}
	if len(seen) != 1 || seen[0] != "goodbye world" {
		t.Errorf("expected one notification with new text, got %v", seen)
	}
}

func TestMemory_RejectedEditDoesNotNotify(t *testing.T) {
	buf := NewMemory("abc")
	called := false
	buf.OnChange(func(string) { called = true })

	if err := buf.Apply(NewDelete(0, 10)); err == nil {
		t.Fatal("expected error for out of range edit")
	}
	if called {
		t.Error("listener should not run for a rejected edit")
	}
	if buf.Text() != "abc" {
		t.Errorf("text changed after rejected edit: %q", buf.Text())
	}
}
