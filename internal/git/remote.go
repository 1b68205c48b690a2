package git

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/waabox/hacknow/internal/domain"
)

// DefaultHost is the forge used when no host is configured.
const DefaultHost = "github.com"

// RemoteURL builds the clone URL for repo on host using the given transport.
// HTTPS yields https://host/owner/name, SSH yields git@host:owner/name.
func RemoteURL(host string, repo domain.Repository, transport domain.Transport) string {
	if host == "" {
		host = DefaultHost
	}
	if transport == domain.TransportSSH {
		return fmt.Sprintf("git@%s:%s", host, repo)
	}
	return fmt.Sprintf("https://%s/%s", host, repo)
}

// DetectRepository reads the .git/config in the given directory and returns
// the Repository named by the origin remote URL.
func DetectRepository(dir string) (domain.Repository, error) {
	configPath := filepath.Join(dir, ".git", "config")
	f, err := os.Open(configPath)
	if err != nil {
		return domain.Repository{}, fmt.Errorf("could not open .git/config: %w", err)
	}
	defer f.Close()

	var inOrigin bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == `[remote "origin"]` {
			inOrigin = true
			continue
		}
		if inOrigin && strings.HasPrefix(line, "[") {
			break
		}
		if inOrigin && strings.HasPrefix(line, "url") {
			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				return ParseRemoteURL(strings.TrimSpace(parts[1]))
			}
		}
	}
	return domain.Repository{}, errors.New("no origin remote found in .git/config")
}

// ParseRemoteURL parses a git remote URL and returns the Repository it names.
// Supports HTTPS (https://github.com/owner/repo.git), scp-like SSH
// (git@github.com:owner/repo.git) and ssh:// URLs.
func ParseRemoteURL(rawURL string) (domain.Repository, error) {
	normalized := strings.TrimSuffix(strings.TrimSuffix(rawURL, "/"), ".git")

	// SSH format: git@github.com:owner/repo
	if strings.HasPrefix(normalized, "git@") {
		trimmed := strings.TrimPrefix(normalized, "git@")
		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			return domain.Repository{}, fmt.Errorf("invalid SSH remote URL: %s", rawURL)
		}
		repo, err := domain.ParseRepository(parts[1])
		if err != nil {
			return domain.Repository{}, fmt.Errorf("invalid SSH remote URL path: %s", parts[1])
		}
		return repo, nil
	}

	// URL format: https://github.com/owner/repo, ssh://git@github.com/owner/repo
	for _, scheme := range []string{"https://", "http://", "ssh://"} {
		if !strings.HasPrefix(normalized, scheme) {
			continue
		}
		withoutScheme := strings.TrimPrefix(normalized, scheme)
		parts := strings.SplitN(withoutScheme, "/", 2)
		if len(parts) != 2 {
			return domain.Repository{}, fmt.Errorf("invalid remote URL: %s", rawURL)
		}
		repo, err := domain.ParseRepository(parts[1])
		if err != nil {
			return domain.Repository{}, fmt.Errorf("invalid remote URL path: %s", parts[1])
		}
		return repo, nil
	}

	return domain.Repository{}, fmt.Errorf("unsupported remote URL format: %s", rawURL)
}
