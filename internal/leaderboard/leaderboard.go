// internal/leaderboard/leaderboard.go
package leaderboard

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go-space-shooter/internal/config"

	"github.com/rs/zerolog"
)

// Entry — одна строка таблицы рекордов.
type Entry struct {
	Name  string
	Score int
}

// Board is the top-N score table backed by a flat text file with one
// "<name> <score>" line per entry, best first.
type Board struct {
	path    string
	size    int
	entries []Entry
	logger  zerolog.Logger
}

// Open reads the board at path. A missing or unreadable file gives an empty
// board; malformed lines are skipped.
func Open(path string, logger zerolog.Logger) *Board {
	b := &Board{path: path, size: config.LeaderboardSize, logger: logger}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("leaderboard unreadable, starting empty")
		}
		return b
	}
	b.entries = parse(data, logger)
	b.sort()
	return b
}

func parse(data []byte, logger zerolog.Logger) []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			logger.Debug().Err(err).Msg("leaderboard line skipped")
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// parseLine splits on the last space so the score is always the final field.
func parseLine(line string) (Entry, error) {
	i := strings.LastIndexByte(line, ' ')
	if i <= 0 {
		return Entry{}, fmt.Errorf("malformed line %q", line)
	}
	score, err := strconv.Atoi(line[i+1:])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed score in %q: %w", line, err)
	}
	return Entry{Name: strings.TrimSpace(line[:i]), Score: score}, nil
}

// SanitizeName replaces spaces so the name stays one field on disk.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "anonymous"
	}
	return strings.ReplaceAll(name, " ", "_")
}

func (b *Board) sort() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
}

// Qualifies reports whether score would enter the board.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < b.size {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Submit inserts the score, keeps the best entries and rewrites the file.
// The returned rank is 1-based, or 0 when the score did not qualify.
func (b *Board) Submit(name string, score int) (int, error) {
	if !b.Qualifies(score) {
		return 0, nil
	}
	e := Entry{Name: SanitizeName(name), Score: score}
	b.entries = append(b.entries, e)
	b.sort()

	rank := 0
	for i := range b.entries {
		if b.entries[i] == e {
			rank = i + 1
		}
	}
	if err := b.write(); err != nil {
		return rank, err
	}
	b.logger.Info().Str("name", e.Name).Int("score", score).Int("rank", rank).Msg("leaderboard updated")
	return rank, nil
}

// write replaces the file via a temp file and rename.
func (b *Board) write() error {
	var buf bytes.Buffer
	for _, e := range b.entries {
		fmt.Fprintf(&buf, "%s %d\n", e.Name, e.Score)
	}

	dir := filepath.Dir(b.path)
	tmpFile, err := os.CreateTemp(dir, ".leaderboard-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create leaderboard temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}

// Entries returns a copy of the board, best first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}
