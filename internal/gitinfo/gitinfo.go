// Package gitinfo reads the checked-out branch of the repository that holds a
// file, straight from .git/HEAD.
package gitinfo

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errNoRepo = errors.New("git dir not found")

// Branch returns the branch name for path, "detached:<sha7>" for a detached
// HEAD, or "" outside a repository. path need not exist yet.
func Branch(path string) string {
	gitDir, err := findGitDir(path)
	if err != nil {
		return ""
	}
	branch, err := readHead(gitDir)
	if err != nil {
		return ""
	}
	return branch
}

func findGitDir(path string) (string, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		start = filepath.Dir(start)
	}
	for {
		dotGit := filepath.Join(start, ".git")
		if info, err := os.Stat(dotGit); err == nil {
			if info.IsDir() {
				return dotGit, nil
			}
			// Worktrees and submodules point elsewhere with "gitdir: <path>".
			if dir, ok := readGitFile(dotGit, start); ok {
				return dir, nil
			}
		}
		parent := filepath.Dir(start)
		if parent == start {
			return "", errNoRepo
		}
		start = parent
	}
}

func readGitFile(path, base string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(data))
	dir, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", false
	}
	dir = strings.TrimSpace(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return dir, true
}

func readHead(gitDir string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", errors.New("empty HEAD")
	}
	line := strings.TrimSpace(scanner.Text())
	if ref, ok := strings.CutPrefix(line, "ref:"); ok {
		return strings.TrimPrefix(strings.TrimSpace(ref), "refs/heads/"), nil
	}
	if len(line) >= 7 {
		return "detached:" + line[:7], nil
	}
	return "detached", nil
}
