package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/waabox/hacknow/internal/domain"
	"github.com/waabox/hacknow/internal/git"
)

func TestRemoteURL_HTTPSByDefault(t *testing.T) {
	repo := domain.Repository{Owner: "waabox", Name: "hacknow"}
	got := git.RemoteURL("", repo, domain.TransportHTTPS)
	if got != "https://github.com/waabox/hacknow" {
		t.Errorf("expected HTTPS URL, got '%s'", got)
	}
}

func TestRemoteURL_SSH(t *testing.T) {
	repo := domain.Repository{Owner: "waabox", Name: "hacknow"}
	got := git.RemoteURL("github.com", repo, domain.TransportSSH)
	if got != "git@github.com:waabox/hacknow" {
		t.Errorf("expected SSH URL, got '%s'", got)
	}
}

func TestRemoteURL_CustomHost(t *testing.T) {
	repo := domain.Repository{Owner: "team", Name: "project"}
	got := git.RemoteURL("git.example.com", repo, domain.TransportHTTPS)
	if got != "https://git.example.com/team/project" {
		t.Errorf("expected custom host URL, got '%s'", got)
	}
}

func TestParseRemoteURL_GitHub(t *testing.T) {
	repo, err := git.ParseRemoteURL("https://github.com/waabox/hacknow.git")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Owner != "waabox" {
		t.Errorf("expected owner 'waabox', got '%s'", repo.Owner)
	}
	if repo.Name != "hacknow" {
		t.Errorf("expected name 'hacknow', got '%s'", repo.Name)
	}
}

func TestParseRemoteURL_GitHubSSH(t *testing.T) {
	repo, err := git.ParseRemoteURL("git@github.com:waabox/hacknow.git")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Owner != "waabox" || repo.Name != "hacknow" {
		t.Errorf("expected 'waabox/hacknow', got '%s'", repo)
	}
}

func TestParseRemoteURL_SSHScheme(t *testing.T) {
	repo, err := git.ParseRemoteURL("ssh://git@github.com/waabox/hacknow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.String() != "waabox/hacknow" {
		t.Errorf("expected 'waabox/hacknow', got '%s'", repo)
	}
}

func TestParseRemoteURL_RoundTripsRemoteURL(t *testing.T) {
	want := domain.Repository{Owner: "octo", Name: "cat"}
	for _, transport := range []domain.Transport{domain.TransportHTTPS, domain.TransportSSH} {
		got, err := git.ParseRemoteURL(git.RemoteURL("", want, transport))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", transport, err)
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", transport, want, got)
		}
	}
}

func TestParseRemoteURL_Invalid(t *testing.T) {
	_, err := git.ParseRemoteURL("not-a-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestDetectRepository_ReadsGitConfig(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.Mkdir(gitDir, 0755); err != nil {
		t.Fatal(err)
	}
	configContent := `[core]
	repositoryformatversion = 0
[remote "origin"]
	url = https://github.com/waabox/hacknow.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`
	if err := os.WriteFile(filepath.Join(gitDir, "config"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := git.DetectRepository(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Owner != "waabox" {
		t.Errorf("expected owner 'waabox', got '%s'", repo.Owner)
	}
	if repo.Name != "hacknow" {
		t.Errorf("expected name 'hacknow', got '%s'", repo.Name)
	}
}

func TestDetectRepository_NoOrigin(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.Mkdir(gitDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "config"), []byte("[core]\n\tbare = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := git.DetectRepository(dir); err == nil {
		t.Fatal("expected error when origin is missing, got nil")
	}
}
