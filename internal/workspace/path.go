package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/waabox/hacknow/internal/domain"
)

// Path returns the absolute directory for repo below base, that is
// base/owner/name. A relative base is resolved against the working
// directory.
func Path(base string, repo domain.Repository) (string, error) {
	abs, err := filepath.Abs(filepath.Join(base, repo.Owner, repo.Name))
	if err != nil {
		return "", fmt.Errorf("resolving path for %s: %w", repo, err)
	}
	return abs, nil
}
