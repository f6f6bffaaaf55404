package sqlite

import (
	"testing"
	"time"

	"mendmd/internal/domain"
)

func TestHistory_RecordAndRecent(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer h.Close()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := h.Record(domain.RunSummary{
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			Root:       "/vault",
			Categories: "image",
			Renamed:    i,
			LinksFixed: i * 2,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Renamed != 2 || runs[1].Renamed != 1 {
		t.Errorf("order wrong: %v", runs)
	}
	if !runs[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("StartedAt = %v", runs[0].StartedAt)
	}
	if runs[0].Root != "/vault" || runs[0].Categories != "image" {
		t.Errorf("row = %+v", runs[0])
	}
}

func TestHistory_EmptyRecent(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer h.Close()

	runs, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestHistory_ReopenSeesRows(t *testing.T) {
	dir := t.TempDir()

	h, err := OpenHistory(dir)
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	if err := h.Record(domain.RunSummary{StartedAt: time.Now(), Root: "/v"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	h2, err := OpenHistory(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer h2.Close()

	runs, err := h2.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
