package types

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
)

type (
	GitHubToken  string
	GitHubRepoID int64
	BranchName   string
	CommitSHA    string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x BranchName) String() string {
	return string(x)
}

// HeadRef returns the short ref path ("heads/<name>") accepted by the git refs API.
func (x BranchName) HeadRef() string {
	return "heads/" + string(x)
}

// FullRef returns the fully qualified ref ("refs/heads/<name>").
func (x BranchName) FullRef() string {
	return "refs/heads/" + string(x)
}

// Validate rejects names that git would refuse as a branch ref, following
// the rules of git check-ref-format --branch.
func (x BranchName) Validate() error {
	name := string(x)
	invalid := func(reason string) error {
		return goerr.Wrap(ErrInvalidOption, "invalid branch name: "+reason, goerr.V("branch", name))
	}

	if strings.TrimSpace(name) == "" {
		return invalid("empty")
	}
	if name == "@" {
		return invalid(`"@" is reserved`)
	}
	if strings.HasPrefix(name, "-") {
		return invalid("starts with '-'")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return invalid("starts or ends with '/'")
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock") {
		return invalid("ends with '.' or '.lock'")
	}
	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return invalid("contains " + seq)
		}
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune("~^:?*[\\", r) {
			return invalid("contains forbidden character " + strconv.QuoteRune(r))
		}
	}
	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") {
			return invalid("path component starts with '.'")
		}
	}

	return nil
}

func (x CommitSHA) String() string {
	return string(x)
}
