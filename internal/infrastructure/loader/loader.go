package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
	"github.com/riskibarqy/match-analyst/internal/platform/logging"
)

const (
	DefaultBasePath = "football.json-master"
	leagueFileExt   = ".json"
)

// Loader reads a corpus laid out as <base>/<season>/<league>.json. Season
// directories and league files are visited in lexical order.
type Loader struct {
	defaultBasePath string
	logger          *logging.Logger
}

func New(defaultBasePath string, logger *logging.Logger) *Loader {
	if strings.TrimSpace(defaultBasePath) == "" {
		defaultBasePath = DefaultBasePath
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{
		defaultBasePath: defaultBasePath,
		logger:          logger,
	}
}

// Load returns every record of the corpus. A missing base path yields an
// empty slice; unreadable or malformed league files are skipped.
func (l *Loader) Load(ctx context.Context, basePath string) []match.Record {
	return l.LoadDetailed(ctx, basePath).Records
}

// LoadDetailed is Load plus the walk summary.
func (l *Loader) LoadDetailed(ctx context.Context, basePath string) match.Corpus {
	if strings.TrimSpace(basePath) == "" {
		basePath = l.defaultBasePath
	}

	startedAt := time.Now()
	result := match.Corpus{Records: make([]match.Record, 0)}

	seasons, err := os.ReadDir(basePath)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.WarnContext(ctx, "match corpus not found", "base_path", basePath)
		} else {
			l.logger.ErrorContext(ctx, "read match corpus failed", "base_path", basePath, "error", err)
		}
		return result
	}

	for _, season := range seasons {
		dir := filepath.Join(basePath, season.Name())
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		result.Seasons++
		l.loadSeason(ctx, dir, season.Name(), &result)
	}

	l.logger.InfoContext(ctx, "match corpus loaded",
		"base_path", basePath,
		"seasons", result.Seasons,
		"files_loaded", result.FilesLoaded,
		"files_skipped", result.FilesSkipped,
		"records", len(result.Records),
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)
	return result
}

func (l *Loader) loadSeason(ctx context.Context, dir, season string, result *match.Corpus) {
	files, err := os.ReadDir(dir)
	if err != nil {
		l.logger.ErrorContext(ctx, "read season directory failed", "season", season, "error", err)
		return
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), leagueFileExt) {
			continue
		}
		path := filepath.Join(dir, file.Name())
		// Stat follows symlinks; DirEntry type bits do not.
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}

		records, err := readLeagueFile(path, season)
		if err != nil {
			result.FilesSkipped++
			l.logger.ErrorContext(ctx, "skip league file", "path", path, "error", err)
			continue
		}
		result.FilesLoaded++
		result.Records = append(result.Records, records...)
	}
}

func readLeagueFile(path, season string) ([]match.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrap(err, "read league file")
	}

	var top any
	if err := sonic.Unmarshal(raw, &top); err != nil {
		return nil, crerr.Wrap(err, "decode league file")
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return nil, crerr.Newf("league file top level is %T, want object", top)
	}

	stem := strings.TrimSuffix(filepath.Base(path), leagueFileExt)
	league := stem
	if name, ok := obj["name"].(string); ok && strings.TrimSpace(name) != "" {
		league = name
	}

	items, _ := obj["matches"].([]any)
	records := make([]match.Record, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record := match.Normalize(season, league, entry)
		record.LeagueFile = stem
		records = append(records, record)
	}
	return records, nil
}
