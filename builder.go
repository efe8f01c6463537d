package kotobadict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const recordFileExt = ".csv"

type recordReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	numLine   int
}

func newRecordReader(r io.Reader) *recordReader {
	return &recordReader{
		r: bufio.NewReader(r),
	}
}

func (r *recordReader) readLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	} else if err == nil {
		n := len(line)
		if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
			line = line[:n-2]
		} else {
			line = line[:n-1]
		}
	}
	if err == nil {
		r.numLine++
	}
	return line, err
}

// readRecord reads the next line and splits it into fields. A blank line
// yields a record with no fields. The input has already been decoded to
// UTF-8; a replacement character in it means the source bytes were not
// valid EUC-JP, which aborts the read.
func (r *recordReader) readRecord(dst []string) ([]string, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	if bytes.ContainsRune(line, utf8.RuneError) {
		return nil, fmt.Errorf("invalid EUC-JP byte sequence at line %d", r.numLine)
	}

	dst = dst[:0]
	if len(line) == 0 {
		return dst, nil
	}

	var i int
	for {
		i = bytes.IndexByte(line, ',')
		field := line
		if i >= 0 {
			field = field[:i]
		}

		dst = append(dst, string(field))

		if i >= 0 {
			line = line[i+1:]
		} else {
			break
		}
	}
	return dst, nil
}

// WordListBuilder accumulates normalized readings into a sorted unique
// set. The comparator is plain byte order, which on UTF-8 strings equals
// ascending codepoint order, so Words is deterministic for any insertion
// order.
type WordListBuilder struct {
	words *treeset.Set
}

func NewWordListBuilder() *WordListBuilder {
	return &WordListBuilder{
		words: treeset.NewWithStringComparator(),
	}
}

// Add normalizes one raw reading and retains it unless the result is
// empty.
func (builder *WordListBuilder) Add(reading string) {
	word := NormalizeReading(reading)
	if word == "" {
		return
	}
	builder.words.Add(word)
}

// ReadRecords consumes every record of one decoded record file. Records
// with no fields are skipped.
func (builder *WordListBuilder) ReadRecords(input io.Reader) error {
	var recordBuf []string
	r := newRecordReader(input)
	for {
		record, err := r.readRecord(recordBuf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		recordBuf = record
		if len(record) == 0 {
			continue
		}
		builder.Add(ExtractReading(record))
	}
}

// BuildCorpus walks the corpus directory tree and feeds every record
// file, matched by extension case-insensitively, through ReadRecords.
// The first unreadable or undecodable file fails the whole build.
func (builder *WordListBuilder) BuildCorpus(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), recordFileExt) {
			return nil
		}
		return builder.buildRecordFile(path)
	})
}

func (builder *WordListBuilder) buildRecordFile(path string) error {
	recordFile, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer recordFile.Close()

	err = builder.ReadRecords(transform.NewReader(recordFile, japanese.EUCJP.NewDecoder()))
	if err != nil {
		return fmt.Errorf("%s: %s", path, err)
	}
	return nil
}

// Size returns the number of distinct words accumulated so far.
func (builder *WordListBuilder) Size() int {
	return builder.words.Size()
}

// Words returns the accumulated words in ascending codepoint order with
// no duplicates.
func (builder *WordListBuilder) Words() []string {
	words := make([]string, 0, builder.words.Size())
	it := builder.words.Iterator()
	for it.Next() {
		words = append(words, it.Value().(string))
	}
	return words
}
