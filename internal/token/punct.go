package token

// Punct enumerates the punctuation marks the lexers recognise.
type Punct uint8

const (
	PunctUnknown Punct = iota
	Period             // .
	Comma              // ,
	Bang               // !
	Question           // ?
	Colon              // :
	Semicolon          // ;
	Quote              // " “ ” „
	Apostrophe         // ' ‘ ’
	OpenRound          // (
	CloseRound         // )
	OpenSquare         // [
	CloseSquare        // ]
	OpenCurly          // {
	CloseCurly         // }
	Hyphen             // -
	EnDash             // –
	EmDash             // —
	Ellipsis           // …
	Slash              // /
	Backslash          // \
	Ampersand          // &
	At                 // @
	Hash               // #
	Dollar             // $
	Percent            // %
	Star               // *
	Plus               // +
	Equal              // =
	LessThan           // <
	GreaterThan        // >
	Caret              // ^
	Underscore         // _
	Backtick           // `
	Pipe               // |
	Tilde              // ~
)

var punctByRune = map[rune]Punct{
	'.': Period, ',': Comma, '!': Bang, '?': Question, ':': Colon, ';': Semicolon,
	'"': Quote, '“': Quote, '”': Quote, '„': Quote, '«': Quote, '»': Quote,
	'\'': Apostrophe, '‘': Apostrophe, '’': Apostrophe,
	'(': OpenRound, ')': CloseRound, '[': OpenSquare, ']': CloseSquare,
	'{': OpenCurly, '}': CloseCurly,
	'-': Hyphen, '‐': Hyphen, '–': EnDash, '—': EmDash, '…': Ellipsis,
	'/': Slash, '\\': Backslash, '&': Ampersand, '@': At, '#': Hash,
	'$': Dollar, '%': Percent, '*': Star, '+': Plus, '=': Equal,
	'<': LessThan, '>': GreaterThan, '^': Caret, '_': Underscore,
	'`': Backtick, '|': Pipe, '~': Tilde,
}

var punctNames = [...]string{
	PunctUnknown: "Unknown", Period: "Period", Comma: "Comma", Bang: "Bang",
	Question: "Question", Colon: "Colon", Semicolon: "Semicolon", Quote: "Quote",
	Apostrophe: "Apostrophe", OpenRound: "OpenRound", CloseRound: "CloseRound",
	OpenSquare: "OpenSquare", CloseSquare: "CloseSquare", OpenCurly: "OpenCurly",
	CloseCurly: "CloseCurly", Hyphen: "Hyphen", EnDash: "EnDash", EmDash: "EmDash",
	Ellipsis: "Ellipsis", Slash: "Slash", Backslash: "Backslash", Ampersand: "Ampersand",
	At: "At", Hash: "Hash", Dollar: "Dollar", Percent: "Percent", Star: "Star",
	Plus: "Plus", Equal: "Equal", LessThan: "LessThan", GreaterThan: "GreaterThan",
	Caret: "Caret", Underscore: "Underscore", Backtick: "Backtick", Pipe: "Pipe",
	Tilde: "Tilde",
}

// PunctOf maps a rune to its punctuation kind.
func PunctOf(r rune) (Punct, bool) {
	p, ok := punctByRune[r]
	return p, ok
}

func (p Punct) String() string {
	if int(p) < len(punctNames) {
		return punctNames[p]
	}
	return "Punct(?)"
}
