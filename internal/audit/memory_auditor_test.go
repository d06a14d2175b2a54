package audit

import (
	"fmt"
	"testing"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

func TestInMemoryAuditor(t *testing.T) {
	a := NewInMemoryAuditor()

	for i := 0; i < 5; i++ {
		entry := core.AuditEntry{
			ID:     fmt.Sprintf("req-%d", i),
			Action: "check.run",
		}
		if i%2 == 0 {
			entry.Action = "apl.update"
		}
		if err := a.Log(entry); err != nil {
			t.Fatalf("logging entry: %v", err)
		}
	}

	recent, err := a.GetRecent(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d entries, want 3", len(recent))
	}
	if recent[2].ID != "req-4" {
		t.Errorf("got last entry '%s', want 'req-4'", recent[2].ID)
	}

	all, err := a.GetRecent(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("got %d entries, want 5", len(all))
	}

	updates, err := a.Find(func(entry core.AuditEntry) bool {
		return entry.Action == "apl.update"
	}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("got %d entries, want 3", len(updates))
	}

	capped, err := a.Find(func(core.AuditEntry) bool { return true }, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capped) != 2 || capped[1].ID != "req-4" {
		t.Errorf("got %+v, want the 2 most recent entries", capped)
	}
}
