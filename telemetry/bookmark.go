package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkNewBestScore BookmarkType = "new_best_score"
	BookmarkBoardFill    BookmarkType = "board_fill"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Session     int          `csv:"session"`
	Tick        uint64       `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"session", b.Session,
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable sessions.
type BookmarkDetector struct {
	fillFraction float64
	bestScore    int
	filled       bool
}

// NewBookmarkDetector creates a detector. A board-fill bookmark fires the
// first time a session covers at least fillFraction of the board.
func NewBookmarkDetector(fillFraction float64) *BookmarkDetector {
	if fillFraction <= 0 || fillFraction > 1 {
		fillFraction = 0.5
	}
	return &BookmarkDetector{fillFraction: fillFraction}
}

// BestScore returns the highest score seen.
func (bd *BookmarkDetector) BestScore() int { return bd.bestScore }

// Check analyzes a finished session and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(r SessionRecord) []Bookmark {
	var bookmarks []Bookmark

	if r.Score > bd.bestScore {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkNewBestScore,
			Session:     r.Session,
			Tick:        r.EndTick,
			Description: fmt.Sprintf("score %d beats previous best %d", r.Score, bd.bestScore),
		})
		bd.bestScore = r.Score
	}

	if !bd.filled && r.FillRatio >= bd.fillFraction {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkBoardFill,
			Session:     r.Session,
			Tick:        r.EndTick,
			Description: fmt.Sprintf("body covered %.0f%% of the board", r.FillRatio*100),
		})
		bd.filled = true
	}

	return bookmarks
}
