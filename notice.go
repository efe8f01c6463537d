package kotobadict

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ProvenanceInfo identifies the dictionary source a word list was built
// from. It is consumed only by the notice writer; the pipeline itself
// never depends on it.
type ProvenanceInfo struct {
	RepoURL  string
	Revision string
	BuiltAt  time.Time
}

// WriteNotice writes the attribution notice for a redistributed word
// list.
func WriteNotice(w io.Writer, info ProvenanceInfo) error {
	_, err := fmt.Fprintf(w, `This project bundles word data derived from the IPA dictionary (mecab-ipadic).

Source repository: %s
Source revision: %s
Build timestamp (UTC): %s

The redistributed data is governed by the license terms in COPYING-ipadic.txt.
`, info.RepoURL, info.Revision, info.BuiltAt.UTC().Format("2006-01-02T15:04:05Z"))
	return err
}

// CopyLicense copies the upstream license file next to the artifact.
func CopyLicense(src, dst string) error {
	in, err := os.OpenFile(src, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
