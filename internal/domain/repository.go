package domain

import (
	"fmt"
	"strings"
)

// Repository identifies a hosted repository by owner and name.
type Repository struct {
	Owner string
	Name  string
}

// String returns the owner/name identifier.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository parses an owner/name identifier. The identifier must
// contain exactly one slash and both halves must be non-empty.
func ParseRepository(id string) (Repository, error) {
	if id == "" {
		return Repository{}, fmt.Errorf("%w: no repo specified", ErrInvalidInput)
	}
	if strings.Count(id, "/") != 1 {
		return Repository{}, fmt.Errorf("%w: repo %q needs to contain exactly one slash", ErrInvalidInput, id)
	}
	owner, name, _ := strings.Cut(id, "/")
	if owner == "" || name == "" {
		return Repository{}, fmt.Errorf("%w: repo %q needs both an owner and a name", ErrInvalidInput, id)
	}
	return Repository{Owner: owner, Name: name}, nil
}

// Transport selects the remote URL form used for cloning.
type Transport int

const (
	TransportHTTPS Transport = iota
	TransportSSH
)

func (t Transport) String() string {
	switch t {
	case TransportSSH:
		return "ssh"
	default:
		return "https"
	}
}
