package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissing signals an absent lint report. Callers report it once and
// continue with zero violations.
var ErrMissing = errors.New("lint report not found")

// FileResult mirrors one entry of the ESLint JSON formatter output,
// limited to the fields this tool reads.
type FileResult struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`
}

type Message struct {
	RuleID  string `json:"ruleId"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Load reads and decodes the lint report at path.
func Load(path string) ([]FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("failed to read lint report %s: %w", path, err)
	}

	var results []FileResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse lint report %s: %w", path, err)
	}
	return results, nil
}

// Specifier extracts the offending import specifier from a lint message:
// the first single-quoted substring. The quoting is a fixed contract with
// the external tool and must be matched exactly.
func Specifier(message string) (string, bool) {
	open := strings.IndexByte(message, '\'')
	if open < 0 {
		return "", false
	}
	rest := message[open+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// Relativize strips the repository root from an absolute report path,
// matching the root-relative form the rest of the tool works in.
func Relativize(reportPath, repoRoot string) string {
	p := filepath.ToSlash(reportPath)
	root := strings.TrimSuffix(filepath.ToSlash(repoRoot), "/")
	if root != "" && strings.HasPrefix(p, root+"/") {
		return p[len(root)+1:]
	}
	return p
}
