package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/questions"
	"github.com/kotaroooo0/questions/server"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath      string
	fileMatches     int
	sentenceMatches int
	tokenizer       string
	stem            bool
	useMySQL        bool
	importDir       string
	serveAddr       string
	query           string
	debug           bool
	logFormat       string
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("questions", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flagSet.IntVar(&opts.fileMatches, "file-matches", 0, "number of documents to extract sentences from (default 1)")
	flagSet.IntVar(&opts.sentenceMatches, "sentence-matches", 0, "number of sentences to print (default 1)")
	flagSet.StringVar(&opts.tokenizer, "tokenizer", "", "tokenizer: prose, standard or morphological")
	flagSet.BoolVar(&opts.stem, "stem", false, "apply the snowball english stemmer to tokens")
	flagSet.BoolVar(&opts.useMySQL, "mysql", false, "load the corpus from the MySQL storage in the config")
	flagSet.StringVar(&opts.importDir, "import", "", "import .txt files from this directory into MySQL and exit")
	flagSet.StringVar(&opts.serveAddr, "serve", "", "serve the HTTP API on this address instead of prompting")
	flagSet.StringVarP(&opts.query, "query", "q", "", "answer this query instead of prompting")
	flagSet.BoolVar(&opts.debug, "debug", false, "log at debug level and dump full rankings")
	flagSet.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: questions [flags] [corpus-dir]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(flagSet, opts)
	if err != nil {
		return err
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(1))
	}
	if flagSet.NArg() == 1 {
		cfg.Storage.Directory = flagSet.Arg(0)
	}
	logger := newLogger(cfg.Log)

	if opts.importDir != "" {
		return importDirectory(cfg, opts.importDir, logger)
	}

	storage, closeStorage, err := openStorage(cfg, opts.useMySQL)
	if err != nil {
		return err
	}
	defer closeStorage()
	analyzer, splitter, err := cfg.Analyzer.Build()
	if err != nil {
		return err
	}
	index, err := questions.NewIndexFromStorage(storage, analyzer)
	if err != nil {
		return err
	}
	logger.Debug("corpus indexed", "documents", index.Size(), "vocabulary", len(index.IDF()))

	searcher := questions.NewSearcher(index, analyzer, splitter,
		questions.WithFileMatches(cfg.FileMatches),
		questions.WithSentenceMatches(cfg.SentenceMatches),
		questions.WithLogger(logger),
	)

	if opts.serveAddr != "" {
		cfg.Server.Addr = opts.serveAddr
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(searcher, cfg.FileMatches, cfg.SentenceMatches, logger).ListenAndServe(ctx, cfg.Server.Addr)
	}

	query := opts.query
	if query == "" {
		fmt.Fprint(stdout, "Query: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read query: %w", err)
		}
		query = strings.TrimSpace(line)
	}

	result, err := searcher.Search(query)
	if err != nil {
		return err
	}
	if opts.debug {
		pp.Fprintln(os.Stderr, result)
	}
	for _, sentence := range result.Sentences {
		fmt.Fprintln(stdout, sentence)
	}
	return nil
}

// loadConfig は設定ファイルを読み込み、明示的に指定されたフラグで上書きする
func loadConfig(flagSet *pflag.FlagSet, opts options) (*questions.Config, error) {
	cfg := questions.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = questions.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}
	if flagSet.Changed("file-matches") {
		cfg.FileMatches = opts.fileMatches
	}
	if flagSet.Changed("sentence-matches") {
		cfg.SentenceMatches = opts.sentenceMatches
	}
	if flagSet.Changed("tokenizer") {
		cfg.Analyzer.Tokenizer = opts.tokenizer
	}
	if flagSet.Changed("stem") {
		cfg.Analyzer.Stemming = opts.stem
	}
	if flagSet.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg questions.LogConfig) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOptions))
}

// openStorage はコーパスのストレージと、その後始末をする関数を返す
func openStorage(cfg *questions.Config, useMySQL bool) (questions.Storage, func() error, error) {
	if useMySQL {
		if cfg.Storage.MySQL == nil {
			return nil, nil, errors.New("--mysql requires storage.mysql in the config file")
		}
		db, err := questions.NewDBClient(cfg.Storage.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mysql: %w", err)
		}
		return questions.NewStorageRdbImpl(db), db.Close, nil
	}
	if cfg.Storage.Directory == "" {
		return nil, nil, errors.New("no corpus: pass a corpus directory or set storage.directory")
	}
	return questions.NewDirectoryStorage(cfg.Storage.Directory), func() error { return nil }, nil
}

func importDirectory(cfg *questions.Config, dir string, logger *slog.Logger) error {
	if cfg.Storage.MySQL == nil {
		return errors.New("--import requires storage.mysql in the config file")
	}
	docs, err := questions.NewDirectoryStorage(dir).GetAllDocuments()
	if err != nil {
		return err
	}
	db, err := questions.NewDBClient(cfg.Storage.MySQL)
	if err != nil {
		return fmt.Errorf("connect mysql: %w", err)
	}
	defer db.Close()

	storage := questions.NewStorageRdbImpl(db)
	for _, doc := range docs {
		id, err := storage.AddDocument(doc)
		if err != nil {
			return fmt.Errorf("import %s: %w", doc.Name, err)
		}
		logger.Debug("imported document", "name", doc.Name, "id", id)
	}
	count, err := storage.CountDocuments()
	if err != nil {
		return err
	}
	logger.Info("import finished", "imported", len(docs), "total", count)
	return nil
}
