package lexer

import (
	"strings"
)

// Kind is the class of a lexeme.
type Kind int

const (
	Text Kind = iota
	Opening
	Closing
	SelfClosing
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case SelfClosing:
		return "self_closing"
	default:
		return "invalid"
	}
}

// voidTags never take children or a closing tag.
var voidTags = map[string]bool{
	"AREA":     true,
	"BASE":     true,
	"BR":       true,
	"COL":      true,
	"COMMAND":  true,
	"EMBED":    true,
	"HR":       true,
	"IMG":      true,
	"INPUT":    true,
	"KEYGEN":   true,
	"LINK":     true,
	"MENUITEM": true,
	"META":     true,
	"PARAM":    true,
	"SOURCE":   true,
	"TRACK":    true,
	"WBR":      true,
}

var delimiters = strings.NewReplacer("<", "", "/", "", ">", "")

// IsVoid reports whether name is a void element. Case is ignored.
func IsVoid(name string) bool {
	return voidTags[strings.ToUpper(name)]
}

// IsTag reports whether lexeme is a tag lexeme.
func IsTag(lexeme string) bool {
	return len(lexeme) > 0 && lexeme[0] == '<'
}

// TagName returns the normalized name of a tag lexeme: delimiters and
// surrounding whitespace stripped, anything after the first inner space
// dropped, uppercased. "<Div class=x>" and "</div >" both yield "DIV".
func TagName(lexeme string) string {
	name := strings.TrimSpace(delimiters.Replace(lexeme))
	if i := strings.IndexAny(name, " \t\n\r\f"); i >= 0 {
		name = name[:i]
	}
	return strings.ToUpper(name)
}

// Classify returns the class of lexeme. It is recomputed on every call.
func Classify(lexeme string) Kind {
	if !IsTag(lexeme) {
		return Text
	}
	if len(lexeme) > 1 && lexeme[1] == '/' {
		return Closing
	}
	if voidTags[TagName(lexeme)] {
		return SelfClosing
	}
	return Opening
}
