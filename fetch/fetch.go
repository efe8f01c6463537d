// Package fetch retrieves the source dictionary repository. It shells out
// to git the same way a developer would; there is no retry logic because
// a failed clone means the build cannot proceed.
package fetch

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Clone makes a shallow clone of repoURL at dest.
func Clone(repoURL, dest string) error {
	var stderr bytes.Buffer
	cmd := exec.Command("git", "clone", "--depth", "1", repoURL, dest)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s: %s: %s", repoURL, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Revision returns the HEAD commit hash of the repository containing
// dir. dir may be any directory inside the work tree.
func Revision(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %s: %s", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}
