// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves the upstream stub repository into a local
// directory. The runner is an interface so the consolidation pipeline can
// be tested against a fake that just populates a directory tree.
package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

const binGit = "git"

// Runner supplies a local directory tree holding the stub sources.
type Runner interface {
	// Available reports whether the runner's backing tool exists on PATH.
	Available() bool

	// Clone fetches url into dest, replacing any previous contents.
	Clone(ctx context.Context, url, dest string) error

	// Cleanup removes dest. Best effort; used on every exit path.
	Cleanup(dest string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunContext(ctx context.Context, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunContext(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// GitRunner implements Runner with a shallow git clone.
type GitRunner struct {
	exec executor
}

// NewGitRunner returns a Runner that shells out to git.
func NewGitRunner() *GitRunner {
	return &GitRunner{exec: osExecutor{}}
}

func (g *GitRunner) Available() bool {
	_, err := g.exec.LookPath(binGit)
	return err == nil
}

func (g *GitRunner) Clone(ctx context.Context, url, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("clearing clone destination %s: %w", dest, err)
	}
	if err := g.exec.RunContext(ctx, binGit, "clone", "--depth=1", url, dest); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

func (g *GitRunner) Cleanup(dest string) error {
	return os.RemoveAll(dest)
}
