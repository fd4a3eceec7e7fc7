package questions

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kotaroooo0/questions/morphology"
	"gopkg.in/yaml.v3"
)

const (
	TokenizerStandard      = "standard"
	TokenizerProse         = "prose"
	TokenizerMorphological = "morphological"

	ReadingFormKana   = "kana"
	ReadingFormRomaji = "romaji"

	StopWordsEnglish = "english"
	StopWordsNone    = "none"
)

// Config は設定ファイルの内容。未指定の項目は DefaultConfig の値になる
type Config struct {
	FileMatches     int            `yaml:"file_matches"`
	SentenceMatches int            `yaml:"sentence_matches"`
	Analyzer        AnalyzerConfig `yaml:"analyzer"`
	Storage         StorageConfig  `yaml:"storage"`
	Server          ServerConfig   `yaml:"server"`
	Log             LogConfig      `yaml:"log"`
}

type AnalyzerConfig struct {
	Tokenizer      string            `yaml:"tokenizer"`
	StopWords      string            `yaml:"stop_words"`
	ExtraStopWords []string          `yaml:"extra_stop_words"`
	Stemming       bool              `yaml:"stemming"`
	ReadingForm    string            `yaml:"reading_form"`
	CharMappings   map[string]string `yaml:"char_mappings"`
}

type StorageConfig struct {
	Directory string    `yaml:"directory"`
	MySQL     *DBConfig `yaml:"mysql,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		FileMatches:     DefaultFileMatches,
		SentenceMatches: DefaultSentenceMatches,
		Analyzer: AnalyzerConfig{
			Tokenizer: TokenizerProse,
			StopWords: StopWordsEnglish,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig は YAML ファイルを DefaultConfig の上に読み込む
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LogLevel は log.level を slog の Level として返す
func (c LogConfig) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) Validate() error {
	var errs []error
	if c.FileMatches < 1 {
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("file_matches must be positive, got %d", c.FileMatches)))
	}
	if c.SentenceMatches < 1 {
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("sentence_matches must be positive, got %d", c.SentenceMatches)))
	}
	switch c.Analyzer.Tokenizer {
	case TokenizerStandard, TokenizerProse, TokenizerMorphological:
	default:
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("unknown tokenizer %q", c.Analyzer.Tokenizer)))
	}
	switch c.Analyzer.StopWords {
	case StopWordsEnglish, StopWordsNone, "":
	default:
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("unknown stop word list %q", c.Analyzer.StopWords)))
	}
	switch c.Analyzer.ReadingForm {
	case "":
	case ReadingFormKana, ReadingFormRomaji:
		if c.Analyzer.Tokenizer != TokenizerMorphological {
			errs = append(errs, NewInvalidInputError("reading_form requires the morphological tokenizer"))
		}
	default:
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("unknown reading form %q", c.Analyzer.ReadingForm)))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("unknown log level %q", c.Log.Level)))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, NewInvalidInputError(fmt.Sprintf("unknown log format %q", c.Log.Format)))
	}
	return errors.Join(errs...)
}

// StopWordList は設定されたストップワード一覧を返す
func (c AnalyzerConfig) StopWordList() []string {
	words := make([]string, 0, len(EnglishStopWords)+len(c.ExtraStopWords))
	if c.StopWords == StopWordsEnglish {
		words = append(words, EnglishStopWords...)
	}
	return append(words, c.ExtraStopWords...)
}

// Build は設定からアナライザと文分割器を組み立てる。
// 形態素解析器は辞書の読み込みが重いので必要な場合だけ生成する
func (c AnalyzerConfig) Build() (Analyzer, SentenceSplitter, error) {
	mapper := TypographicMapper
	if len(c.CharMappings) > 0 {
		mapper = make(map[string]string, len(TypographicMapper)+len(c.CharMappings))
		for k, v := range TypographicMapper {
			mapper[k] = v
		}
		for k, v := range c.CharMappings {
			mapper[k] = v
		}
	}
	charFilters := []CharFilter{NewMappingCharFilter(mapper)}

	var tokenizer Tokenizer
	var splitter SentenceSplitter = NewProseSentenceSplitter()
	switch c.Tokenizer {
	case TokenizerStandard:
		tokenizer = NewStandardTokenizer()
	case TokenizerProse, "":
		tokenizer = NewProseTokenizer()
	case TokenizerMorphological:
		kagome, err := morphology.NewKagome()
		if err != nil {
			return Analyzer{}, nil, fmt.Errorf("initialize kagome: %w", err)
		}
		tokenizer = NewMorphologicalTokenizer(kagome)
		splitter = NewJapaneseSentenceSplitter()
	default:
		return Analyzer{}, nil, NewInvalidInputError(fmt.Sprintf("unknown tokenizer %q", c.Tokenizer))
	}

	tokenFilters := []TokenFilter{NewLowercaseFilter(), NewPunctuationFilter(), NewStopWordFilter(c.StopWordList())}
	if c.Stemming {
		tokenFilters = append(tokenFilters, NewStemmerFilter())
	}
	switch c.ReadingForm {
	case ReadingFormKana:
		tokenFilters = append(tokenFilters, NewKanaReadingformFilter())
	case ReadingFormRomaji:
		tokenFilters = append(tokenFilters, NewRomajiReadingformFilter())
	}
	return NewAnalyzer(charFilters, tokenizer, tokenFilters), splitter, nil
}
