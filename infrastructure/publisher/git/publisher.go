package git

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

const redacted = "***"

// Publisher commits the artifact on top of the remote branch and pushes it.
// The local checkout is forced to the remote state first, so local edits to tracked files are lost.
type Publisher struct {
	cfg    config.Git
	runner Runner
}

func New(cfg *config.Config, runner Runner) *Publisher {
	return &Publisher{
		cfg:    cfg.Git,
		runner: runner,
	}
}

func (p *Publisher) Publish(ctx context.Context, artifactPath string) (publisher.Result, error) {
	if p.cfg.Token == "" {
		logrus.Info("publish: GIT_TOKEN not set, skipping git publish")
		return publisher.Skip("git token not configured"), nil
	}

	repoDir, err := filepath.Abs(p.cfg.RepoDir)
	if err != nil {
		return publisher.Result{}, p.fail("resolve", err)
	}
	if _, err := os.Stat(filepath.Join(repoDir, ".git")); err != nil {
		logrus.WithField("dir", repoDir).Info("publish: not a git repository, skipping git publish")
		return publisher.Skip("not a git repository"), nil
	}

	relPath, err := relativeTo(repoDir, artifactPath)
	if err != nil {
		return publisher.Result{}, p.fail("resolve", err)
	}
	absPath := filepath.Join(repoDir, relPath)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return publisher.Result{}, p.fail("read", err)
	}

	remote, err := p.remoteURL(ctx, repoDir)
	if err != nil {
		return publisher.Result{}, p.fail("remote", err)
	}

	branch := p.cfg.Branch
	tracking := "origin/" + branch

	steps := []struct {
		op   string
		args []string
	}{
		{"fetch", []string{"fetch", remote, fmt.Sprintf("+refs/heads/%s:refs/remotes/%s", branch, tracking)}},
		{"checkout", []string{"checkout", "-f", "-B", branch, tracking}},
		{"reset", []string{"reset", "--hard", tracking}},
	}
	for _, step := range steps {
		if _, err := p.runner.Run(ctx, repoDir, step.args...); err != nil {
			return publisher.Result{}, p.fail(step.op, err)
		}
	}

	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		return publisher.Result{}, p.fail("write", err)
	}

	status, err := p.runner.Run(ctx, repoDir, "status", "--porcelain", "--", relPath)
	if err != nil {
		return publisher.Result{}, p.fail("status", err)
	}
	if strings.TrimSpace(string(status)) == "" {
		logrus.WithField("path", relPath).Info("publish: artifact unchanged, nothing to publish")
		return publisher.Skip("nothing to publish"), nil
	}

	if _, err := p.runner.Run(ctx, repoDir, "add", "--", relPath); err != nil {
		return publisher.Result{}, p.fail("add", err)
	}

	commitArgs := []string{
		"-c", "user.name=" + p.cfg.AuthorName,
		"-c", "user.email=" + p.cfg.AuthorEmail,
		"commit", "-m", p.cfg.CommitMessage, "--", relPath,
	}
	if _, err := p.runner.Run(ctx, repoDir, commitArgs...); err != nil {
		return publisher.Result{}, p.fail("commit", err)
	}

	if _, err := p.runner.Run(ctx, repoDir, "push", remote, "HEAD:"+branch); err != nil {
		return publisher.Result{}, p.fail("push", err)
	}

	revision := ""
	if out, err := p.runner.Run(ctx, repoDir, "rev-parse", "--short", "HEAD"); err == nil {
		revision = strings.TrimSpace(string(out))
	}

	logrus.WithFields(logrus.Fields{
		"branch":   branch,
		"path":     relPath,
		"revision": revision,
	}).Info("publish: snapshot pushed")

	return publisher.Done(revision), nil
}

// remoteURL returns the push target with the token embedded for http(s) remotes.
func (p *Publisher) remoteURL(ctx context.Context, repoDir string) (string, error) {
	raw := p.cfg.RemoteURL
	if raw == "" {
		out, err := p.runner.Run(ctx, repoDir, "remote", "get-url", "origin")
		if err != nil {
			return "", err
		}
		raw = strings.TrimSpace(string(out))
	}

	return AuthenticatedURL(raw, p.cfg.TokenUser, p.cfg.Token)
}

// AuthenticatedURL embeds user:token into http(s) remotes. Other remotes are returned unchanged.
func AuthenticatedURL(raw, user, token string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return raw, nil
	}
	if u.Host == "" {
		return "", errors.Errorf("remote url %q has no host", raw)
	}

	u.User = url.UserPassword(user, token)
	return u.String(), nil
}

// fail wraps err into a PublishError whose message has every credential removed.
func (p *Publisher) fail(op string, err error) error {
	msg := p.redact(err.Error())

	var cause error
	if errors.Is(err, ErrCommandTimeout) {
		cause = fmt.Errorf("%w: %s", ErrCommandTimeout, msg)
	} else {
		cause = errors.New(msg)
	}

	logrus.WithFields(logrus.Fields{
		"op":    op,
		"error": msg,
	}).Error("publish: git step failed")

	return &publisher.PublishError{Op: op, Err: cause}
}

func (p *Publisher) redact(s string) string {
	if p.cfg.Token == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(p.cfg.Token), redacted)
	s = strings.ReplaceAll(s, url.PathEscape(p.cfg.Token), redacted)
	return strings.ReplaceAll(s, p.cfg.Token, redacted)
}

func relativeTo(repoDir, artifactPath string) (string, error) {
	abs, err := filepath.Abs(artifactPath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(repoDir, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("artifact %s is outside repository %s", artifactPath, repoDir)
	}
	return filepath.ToSlash(rel), nil
}
