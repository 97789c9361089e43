package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Title stripping runs over the original text, not the normalized copy, so the
// residue keeps its accents ("Reunião", not "Reuniao"). Patterns therefore
// carry accent alternations.
const (
	wdTitle = `(?:segunda|ter[çc]a|quarta|quinta|sexta|s[áa]bado|domingo)`
	wnTitle = `(?:vinte e (?:uma|duas|dois|tr[êe]s)|dezesseis|dezessete|dezenove|dezoito|quatorze|catorze|quinze|treze|quatro|cinco|seis|sete|oito|nove|onze|doze|vinte|uma|duas|dois|tr[êe]s|dez)`
)

// titleStrips is order-sensitive: command verbs first, then recurrence
// prefixes, then times, then dates and bare weekday names. Times must go
// before weekdays or connector words are left behind ("às 7 da manhã").
var titleStrips = []*regexp.Regexp{
	// (a) leading command verbs
	regexp.MustCompile(`(?i)^\s*lembrete:?\s+`),
	regexp.MustCompile(`(?i)^\s*(me\s+)?lembr[ae](\s+me)?(\s+de|\s+que)?\s+`),
	regexp.MustCompile(`(?i)^\s*(adiciona[r]?|coloca[r]?|anota[r]?)(\s+n[ao]\s+(rotina|agenda))?(\s+(de|que|um|uma))?\s+`),
	regexp.MustCompile(`(?i)^\s*cria[r]?(\s+(uma|um))?(\s+nova?)?\s+rotina(\s+di[áa]ria)?(\s+(de|para|pra))?\s*:?\s*`),
	regexp.MustCompile(`(?i)^\s*(agendar|agende|marcar|marque|marca)(\s+(um|uma))?\s+`),
	// (b) recurrence prefixes
	regexp.MustCompile(`(?i)\btodos?\s+os\s+dias\b`),
	regexp.MustCompile(`(?i)\btod[ao]s?\s+(as\s+|os\s+)?` + wdTitle + `s?(-feiras?)?(\s+a\s+` + wdTitle + `s?(-feiras?)?)?\b`),
	regexp.MustCompile(`(?i)\btodo\s+(o\s+)?dia\b`),
	// (c) time expressions
	regexp.MustCompile(`(?i)\bmeio[- ]dia\b`),
	regexp.MustCompile(`(?i)\bmeia[- ]noite\b`),
	regexp.MustCompile(`(?i)\bd(as|e)\s+\d{1,2}(:\d{2})?\s*(horas?|h)?\s+(at[ée]|[àa]s?)\s+(as\s+)?\d{1,2}(:\d{2})?\s*(horas?|h)?\b`),
	regexp.MustCompile(`(?i)\bat[ée]\s+([àa]s?\s+)?\d{1,2}(:\d{2})?\s*(horas?|h)?\b`),
	// \b does not work next to accented runes (RE2 word boundaries are
	// ASCII), hence the explicit (?:^|\s) anchors and missing right bounds.
	regexp.MustCompile(`(?i)\b` + wnTitle + `\s+e\s+meia\b(\s+da\s+(manh[ãa]|tarde|noite))?`),
	regexp.MustCompile(`(?i)\b` + wnTitle + `\s+da\s+(manh[ãa]|tarde|noite)`),
	regexp.MustCompile(`(?i)(?:^|\s)[àa]s?\s+\d{1,2}(:\d{2})?\s*(horas?|h)?\b(\s+da\s+(manh[ãa]|tarde|noite))?`),
	regexp.MustCompile(`(?i)\b\d{1,2}(:\d{2})?\s*(horas?|h)\b(\s+da\s+(manh[ãa]|tarde|noite))?`),
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\b`),
	// (d) date expressions and bare weekday names
	regexp.MustCompile(`(?i)\bdepois\s+de\s+amanh[ãa]`),
	regexp.MustCompile(`(?i)\bamanh[ãa]`),
	regexp.MustCompile(`(?i)\bhoje\b`),
	regexp.MustCompile(`(?i)\bdia\s+\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b` + wdTitle + `s?(-feiras?)?\b`),
}

var (
	reTitleSpaces    = regexp.MustCompile(`\s+`)
	reEdgePunct      = regexp.MustCompile(`^[\s,.;:!?\-–]+|[\s,.;:!?\-–]+$`)
	reLeadConnector  = regexp.MustCompile(`(?i)^(e|a|o|as|os|de|da|do|na|no|em|para|pra|que|um|uma)\s+`)
	reTrailConnector = regexp.MustCompile(`(?i)\s+(e|a|o|as|os|de|da|do|na|no|em|para|pra|que|um|uma)$`)
)

// ExtractTitle strips every recognized date/time/day/command fragment and
// capitalizes the remainder. Always returns a non-empty label.
func (p *parser) ExtractTitle(text string) string {
	s := text
	for _, re := range titleStrips {
		s = re.ReplaceAllString(s, " ")
	}

	s = cleanupTitle(s)
	if s == "" {
		return defaultTitle
	}

	return capitalizeFirst(s)
}

func cleanupTitle(s string) string {
	s = reTitleSpaces.ReplaceAllString(s, " ")

	for {
		before := s
		s = reEdgePunct.ReplaceAllString(s, "")
		s = reLeadConnector.ReplaceAllString(s, "")
		s = reTrailConnector.ReplaceAllString(s, "")
		if s == before {
			break
		}
	}

	return strings.TrimSpace(s)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// InferCategory is a first-match keyword-bag classifier over the normalized
// text; anything unmatched is personal.
func (p *parser) InferCategory(text string) Category {
	n := p.Normalize(text)

	for _, bag := range categoryBags {
		for _, word := range bag.words {
			if strings.Contains(n, word) {
				return bag.category
			}
		}
	}

	return CategoryPersonal
}
