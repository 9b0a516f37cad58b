package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open test log: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestAppendFillsDefaults(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()

	err := l.Append(ctx, Record{Outcome: OutcomeWin, Character: "Hornet", QuestionsAsked: 3})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	recs, err := l.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}

	rec := recs[0]
	if rec.ID == "" {
		t.Error("ID was not generated")
	}
	if rec.PlayedAt.IsZero() {
		t.Error("PlayedAt was not filled")
	}
	if rec.Outcome != OutcomeWin || rec.Character != "Hornet" || rec.QuestionsAsked != 3 {
		t.Errorf("record round-trip mismatch: %+v", rec)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"Grimm", "Nosk", "Tiso"}
	for i, name := range names {
		err := l.Append(ctx, Record{
			PlayedAt:  base.Add(time.Duration(i) * time.Minute),
			Outcome:   OutcomeLearned,
			Character: name,
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, err := l.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Character != "Tiso" || recs[1].Character != "Nosk" {
		t.Errorf("wrong order: %s, %s", recs[0].Character, recs[1].Character)
	}
}

func TestRecentEmpty(t *testing.T) {
	l := openTestLog(t)

	recs, err := l.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records from an empty log", len(recs))
	}
}
