package snake

import (
	"errors"
	"testing"
)

func TestHighScoreKey(t *testing.T) {
	if got := HighScoreKey("startpage"); got != "startpage.snakeHighScore" {
		t.Errorf("HighScoreKey(startpage) = %q", got)
	}
	if got := HighScoreKey(""); got != "snakeHighScore" {
		t.Errorf("HighScoreKey(\"\") = %q", got)
	}
}

func TestHighScoreStoreLoads(t *testing.T) {
	kv := newFakeKV()
	kv.values["work.snakeHighScore"] = 230

	h, err := NewHighScoreStore(kv, "work")
	if err != nil {
		t.Fatalf("NewHighScoreStore() failed: %v", err)
	}
	if h.Best() != 230 {
		t.Errorf("Best() = %d, expected 230", h.Best())
	}
	if h.Key() != "work.snakeHighScore" {
		t.Errorf("Key() = %q", h.Key())
	}
}

func TestHighScoreStoreRecord(t *testing.T) {
	kv := newFakeKV()
	h, _ := NewHighScoreStore(kv, "home")

	if updated, err := h.Record(0); updated || err != nil {
		t.Errorf("Record(0) = (%v, %v), expected no update", updated, err)
	}
	if updated, _ := h.Record(40); !updated {
		t.Error("Record(40) should raise an empty high score")
	}
	if updated, _ := h.Record(30); updated {
		t.Error("Record(30) should not lower the high score")
	}
	if kv.values["home.snakeHighScore"] != 40 {
		t.Errorf("persisted = %d, expected 40", kv.values["home.snakeHighScore"])
	}
}

func TestHighScoreStoreReadError(t *testing.T) {
	kv := newFakeKV()
	kv.failReads = true

	h, err := NewHighScoreStore(kv, "home")
	if !errors.Is(err, errFake) || !errors.Is(err, ErrHighScoreUnavailable) {
		t.Errorf("NewHighScoreStore() = %v, expected read error", err)
	}
	if h == nil || h.Best() != 0 {
		t.Error("a store should still be returned with a zero high score")
	}
}

func TestHighScoreStoreWithoutKV(t *testing.T) {
	h, err := NewHighScoreStore(nil, "home")
	if err != nil {
		t.Fatalf("NewHighScoreStore(nil) failed: %v", err)
	}
	if updated, err := h.Record(70); !updated || err != nil {
		t.Errorf("Record(70) = (%v, %v), expected in-memory update", updated, err)
	}
	if h.Best() != 70 {
		t.Errorf("Best() = %d, expected 70", h.Best())
	}
}
