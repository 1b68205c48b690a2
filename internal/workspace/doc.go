// Package workspace places repositories on the local file system. It maps
// an owner/name identifier to a directory below a base directory and keeps
// that directory in sync with its remote: a missing checkout is cloned, an
// existing one is fetched and summarized with git status.
//
// All git work is delegated to a git.Runner and runs strictly in sequence.
package workspace
