package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// RepoRoot returns the root directory of the git repository containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %s", dir)
	}

	return strings.TrimSpace(string(output)), nil
}

// ChangedFiles lists files under dir that differ from HEAD, plus untracked
// files, relative to the repository root.
func ChangedFiles(ctx context.Context, dir string) ([]string, error) {
	modified, err := run(ctx, dir, "diff", "--name-only", "--diff-filter=ACMR", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	untracked, err := run(ctx, dir, "ls-files", "--others", "--exclude-standard", "--full-name")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}

	seen := make(map[string]bool)
	var out []string
	for _, path := range append(modified, untracked...) {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}
	return out, nil
}

func run(ctx context.Context, dir string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
