package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndBest(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Difficulty: "medium", Score: 3, Frames: 400},
		{Difficulty: "medium", Score: 7, Frames: 900},
		{Difficulty: "medium", Score: 5, Frames: 700},
		{Difficulty: "hard", Score: 2, Frames: 300},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun(%+v) failed: %v", r, err)
		}
	}

	tests := []struct {
		difficulty string
		want       int
	}{
		{"medium", 7},
		{"hard", 2},
		{"easy", 0},
	}
	for _, tt := range tests {
		got, err := store.SessionBest(tt.difficulty)
		if err != nil {
			t.Fatalf("SessionBest(%q) failed: %v", tt.difficulty, err)
		}
		if got != tt.want {
			t.Errorf("SessionBest(%q) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.RecordRun(RunRecord{Difficulty: "easy", Score: i, Frames: i * 100}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns(3) returned %d runs", len(runs))
	}

	// Newest first.
	for i, want := range []int{5, 4, 3} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, want)
		}
		if runs[i].Frames != want*100 {
			t.Errorf("runs[%d].Frames = %d, want %d", i, runs[i].Frames, want*100)
		}
		if runs[i].Difficulty != "easy" {
			t.Errorf("runs[%d].Difficulty = %q", i, runs[i].Difficulty)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (SessionStats{}) {
		t.Errorf("empty Stats() = %+v", st)
	}

	for _, score := range []int{2, 4, 9} {
		if _, err := store.RecordRun(RunRecord{Difficulty: "hard", Score: score, Frames: 100}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 || st.Best != 9 || st.Average != 5 {
		t.Errorf("Stats() = %+v, want {3 9 5}", st)
	}
}

func TestStoreRejectsInvalidRuns(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  RunRecord
	}{
		{"no difficulty", RunRecord{Score: 1}},
		{"negative score", RunRecord{Difficulty: "easy", Score: -1}},
		{"negative frames", RunRecord{Difficulty: "easy", Frames: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.RecordRun(tt.run); err == nil {
				t.Error("RecordRun() accepted an invalid run")
			}
		})
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	first := openTestStore(t)
	if _, err := first.RecordRun(RunRecord{Difficulty: "easy", Score: 10}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	second := openTestStore(t)
	best, err := second.SessionBest("easy")
	if err != nil {
		t.Fatalf("SessionBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("new session sees best %d from another session", best)
	}
}
