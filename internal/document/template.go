package document

import (
	"log/slog"

	"github.com/mihirlaud/conseil/internal/diff"
)

// Token is one entry of a template phase.
type Token string

const (
	TokenHeading    Token = "heading"
	TokenSubheading Token = "subheading"
	TokenParagraph  Token = "paragraph"
	TokenFilename   Token = "filename"
	TokenDiff       Token = "diff"
)

// Phase is a stage of document assembly.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePerFile
	PhaseOutro
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePerFile:
		return "per-file"
	case PhaseOutro:
		return "outro"
	default:
		return "unknown"
	}
}

// Allows reports whether t has an effect in phase p. Headings are intro and
// outro only; filename and diff need a current hunk.
func (p Phase) Allows(t Token) bool {
	switch t {
	case TokenSubheading, TokenParagraph:
		return p == PhaseIntro || p == PhasePerFile || p == PhaseOutro
	case TokenHeading:
		return p == PhaseIntro || p == PhaseOutro
	case TokenFilename, TokenDiff:
		return p == PhasePerFile
	default:
		return false
	}
}

// Template holds the token lists for the three phases.
type Template struct {
	Intro   []Token
	PerFile []Token
	Outro   []Token
}

// ParseTokens converts configuration strings to tokens. Unknown entries are
// kept and ignored at expansion time.
func ParseTokens(values []string) []Token {
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Token(v)
	}
	return tokens
}

// NewTemplate builds a Template from raw configuration lists.
func NewTemplate(intro, perFile, outro []string) Template {
	return Template{
		Intro:   ParseTokens(intro),
		PerFile: ParseTokens(perFile),
		Outro:   ParseTokens(outro),
	}
}

// Expander appends placeholder blocks to a document.
type Expander struct {
	doc    *Document
	logger *slog.Logger
}

// NewExpander creates an Expander writing into doc.
func NewExpander(doc *Document, logger *slog.Logger) *Expander {
	if logger == nil {
		logger = slog.Default()
	}
	return &Expander{doc: doc, logger: logger}
}

// Expand processes tokens in order. hunk is the current file's hunk during
// PhasePerFile and nil otherwise. Tokens the phase does not allow are skipped.
func (e *Expander) Expand(phase Phase, tokens []Token, hunk *diff.Hunk) {
	for _, t := range tokens {
		if !phase.Allows(t) {
			e.logger.Debug("Ignoring template token", "phase", phase, "token", string(t))
			continue
		}

		switch t {
		case TokenHeading:
			e.doc.addSlot(SlotHeading)
		case TokenSubheading:
			e.doc.addSlot(SlotSubheading)
		case TokenParagraph:
			e.doc.addSlot(SlotParagraph)
		case TokenFilename:
			if hunk != nil {
				e.doc.append(Filename{Path: hunk.Path})
			}
		case TokenDiff:
			if hunk != nil {
				e.doc.append(Hunk{Hunk: *hunk})
			}
		}
	}
}
