package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ajwerner/multiset/orderstat"
)

type loadOptions struct {
	fold bool
	jobs int
}

type loader struct {
	stdin  io.Reader
	opts   loadOptions
	logger *slog.Logger
}

// load tokenizes paths concurrently and inserts every token into m. The
// path "-", or no paths at all, reads standard input, which is read once no
// matter how often "-" is repeated. The multiset is only touched by a single
// goroutine.
func (l *loader) load(ctx context.Context, paths []string, m *orderstat.Multiset[string]) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var sawStdin bool
	paths = slices.DeleteFunc(slices.Clone(paths), func(path string) bool {
		if path != "-" {
			return false
		}
		dup := sawStdin
		sawStdin = true
		return dup
	})
	tokens := make(chan string, 1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for tok := range tokens {
			m.Insert(tok)
		}
	}()
	err := l.readAll(ctx, paths, tokens)
	close(tokens)
	<-done
	return err
}

func (l *loader) readAll(ctx context.Context, paths []string, out chan<- string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(l.opts.jobs)
	for _, path := range paths {
		eg.Go(func() error {
			return l.readFile(ctx, path, out)
		})
	}
	return eg.Wait()
}

func (l *loader) readFile(ctx context.Context, path string, out chan<- string) error {
	var r io.Reader
	if path == "-" {
		r = l.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	n, err := tokenize(ctx, r, l.opts.fold, out)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	l.logger.Debug("tokenized input", "path", path, "tokens", n)
	return nil
}

func tokenize(ctx context.Context, r io.Reader, fold bool, out chan<- string) (n int, err error) {
	var normalize func(string) string
	if fold {
		normalize = newFolder()
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok := sc.Text()
		if normalize != nil {
			tok = normalize(tok)
		}
		select {
		case out <- tok:
			n++
		case <-ctx.Done():
			return n, ctx.Err()
		}
	}
	return n, sc.Err()
}

// newFolder returns a function which case folds a token and strips its
// combining marks. The returned function must not be used concurrently.
func newFolder() func(string) string {
	caser := cases.Fold()
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	return func(s string) string {
		s = caser.String(s)
		stripped, _, err := transform.String(strip, s)
		if err != nil {
			return s
		}
		return stripped
	}
}
