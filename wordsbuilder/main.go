package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kotoba-search/kotobadict"
	"github.com/kotoba-search/kotobadict/fetch"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultRepoURL = "https://github.com/taku910/mecab.git"
	ipadicDirName  = "mecab-ipadic"
	licenseName    = "COPYING"
	noticeName     = "NOTICE.txt"
	licenseOutName = "COPYING-ipadic.txt"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -o file [-c dir] [-u url] [-n dir]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath string
		corpuspath string
		repourl    string
		noticedir  string
	)
	flag.StringVar(&outputpath, "o", "", "output to file")
	flag.StringVar(&corpuspath, "c", "", "already extracted corpus directory (skips cloning)")
	flag.StringVar(&repourl, "u", defaultRepoURL, "source dictionary repository")
	flag.StringVar(&noticedir, "n", "", "write NOTICE.txt and the dictionary license to this directory")

	flag.Parse()

	if outputpath == "" {
		flag.Usage()
		os.Exit(1)
	}

	err := run(outputpath, corpuspath, repourl, noticedir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(outputpath, corpuspath, repourl, noticedir string) error {
	if corpuspath == "" {
		tmp, err := os.MkdirTemp("", "kotobadict-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)

		fmt.Fprintf(os.Stderr, "cloning %s...\n", repourl)
		clonedir := filepath.Join(tmp, "mecab")
		err = fetch.Clone(repourl, clonedir)
		if err != nil {
			return err
		}
		corpuspath = filepath.Join(clonedir, ipadicDirName)
		if _, err := os.Stat(corpuspath); err != nil {
			return fmt.Errorf("expected directory not found: %s", corpuspath)
		}
	}

	builder := kotobadict.NewWordListBuilder()
	fmt.Fprint(os.Stderr, "reading the source file...")
	err := builder.BuildCorpus(corpuspath)
	if err != nil {
		fmt.Fprintln(os.Stderr)
		return err
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, " %d words\n", builder.Size())

	err = kotobadict.WriteWordListFile(outputpath, builder.Words())
	if err != nil {
		return fmt.Errorf("fail to write word list: %s", err)
	}

	if noticedir != "" {
		err = writeNotice(noticedir, corpuspath, repourl)
		if err != nil {
			return fmt.Errorf("fail to write notice: %s", err)
		}
	}
	return nil
}

func writeNotice(noticedir, corpuspath, repourl string) error {
	revision, err := fetch.Revision(corpuspath)
	if err != nil {
		return err
	}
	err = os.MkdirAll(noticedir, 0755)
	if err != nil {
		return err
	}
	err = kotobadict.CopyLicense(filepath.Join(corpuspath, licenseName), filepath.Join(noticedir, licenseOutName))
	if err != nil {
		return err
	}

	noticeWriter, err := os.OpenFile(filepath.Join(noticedir, noticeName), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	err = kotobadict.WriteNotice(noticeWriter, kotobadict.ProvenanceInfo{
		RepoURL:  repourl,
		Revision: revision,
		BuiltAt:  time.Now(),
	})
	if cerr := noticeWriter.Close(); err == nil {
		err = cerr
	}
	return err
}
