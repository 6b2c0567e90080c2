// Package parser turns raw provider text into validated domain content.
package parser

import (
	"strings"
	"unicode/utf8"

	"shulelink/internal/domain"

	"go.uber.org/zap"
)

const quoteSeparator = " - "

// quoteChars are stripped from both ends of a quote's text.
const quoteChars = "\"'“”‘’` \t\r\n"

// Parser validates and shapes provider output. Skipped batch elements are
// reported through the logger.
type Parser struct {
	logger *zap.Logger
}

// New creates a Parser. A nil logger disables skip logging.
func New(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// ParseQuote splits raw on the first " - " into quote text and author.
// It fails only when raw is empty or whitespace.
func (p *Parser) ParseQuote(raw string) (domain.Quote, error) {
	s := cleanResponse(raw)
	if s == "" {
		return domain.Quote{}, domain.NewParseError("quote response is empty", nil)
	}

	text, author := s, ""
	if parts := strings.SplitN(s, quoteSeparator, 2); len(parts) == 2 {
		text, author = parts[0], parts[1]
	}

	text = strings.Trim(text, quoteChars)
	if text == "" {
		text = strings.Trim(s, quoteChars)
	}
	author = strings.Trim(strings.TrimSpace(author), quoteChars)
	if author == "" {
		author = domain.UnknownAuthor
	}
	return domain.Quote{Text: text, Author: author}, nil
}

// ParseNotes accepts raw as notes when it holds at least minLength characters.
func (p *Parser) ParseNotes(raw string, minLength int) (domain.NotesDocument, error) {
	s := cleanResponse(raw)
	if s == "" {
		return domain.NotesDocument{}, domain.NewParseError("notes response is empty", nil)
	}
	if n := utf8.RuneCountInString(s); n < minLength {
		p.logger.Debug("Notes rejected by length gate",
			zap.Int("length", n),
			zap.Int("min_length", minLength),
		)
		return domain.NotesDocument{}, domain.NewParseError("notes response is too short", nil)
	}
	return domain.NotesDocument{Text: s}, nil
}
