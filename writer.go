package kotobadict

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// WriteWordList writes words as gzip-compressed UTF-8 text, one word per
// line, each terminated by a single line feed. The gzip header carries no
// name and no modification time, so the same word sequence always
// produces the same bytes.
func WriteWordList(w io.Writer, words []string) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}

	bufout := bufio.NewWriter(zw)
	for _, word := range words {
		if _, err := bufout.WriteString(word); err != nil {
			return err
		}
		if err := bufout.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bufout.Flush(); err != nil {
		return err
	}
	return zw.Close()
}

// WriteWordListFile writes the word list artifact to path, replacing any
// existing file.
func WriteWordListFile(path string, words []string) error {
	outputWriter, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	err = WriteWordList(outputWriter, words)
	if cerr := outputWriter.Close(); err == nil {
		err = cerr
	}
	return err
}
