package lexer

// TokenType represents the type of a token in EScript source code.
// The token types are organized into logical groups for clarity.
type TokenType int

// Token type constants organized by category
const (
	// Special tokens
	EOF TokenType = iota // End of input

	// Identifiers and literals
	IDENT    // identifiers: x, myVar, _tmp, $scope
	NUMBER   // number literals: 0, 42, 1337
	STRING   // string literals: 'hello', "world"
	TEMPLATE // template literals: `hello`

	literalEnd // marker for end of literals section

	// Keywords
	ASYNC      // async
	AWAIT      // await
	BREAK      // break
	CASE       // case
	CATCH      // catch
	CONST      // const
	CONTINUE   // continue
	DEBUGGER   // debugger
	DEFAULT    // default
	DELETE     // delete
	DO         // do
	ELSE       // else
	FALSE      // false
	FINALLY    // finally
	FOR        // for
	FUNCTION   // function
	IF         // if
	IN         // in
	INSTANCEOF // instanceof
	LET        // let
	NEW        // new
	NULL       // null
	RETURN     // return
	SUPER      // super
	SWITCH     // switch
	THIS       // this
	THROW      // throw
	TRUE       // true
	TRY        // try
	TYPEOF     // typeof
	VAR        // var
	VOID       // void
	WHILE      // while
	WITH       // with
	YIELD      // yield

	keywordEnd // marker for end of keywords section

	// Delimiters
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACK    // [
	RBRACK    // ]
	SEMICOLON // ;
	COLON     // :
	COMMA     // ,
	DOT       // .
	ELLIPSIS  // ...
	QUESTION  // ?
	ARROW     // =>

	// Assignment operators
	ASSIGN             // =
	PLUS_ASSIGN        // +=
	MINUS_ASSIGN       // -=
	TIMES_ASSIGN       // *=
	DIVIDE_ASSIGN      // /=
	PERCENT_ASSIGN     // %=
	POWER_ASSIGN       // **=
	SHL_ASSIGN         // <<=
	SHR_ASSIGN         // >>=
	USHR_ASSIGN        // >>>=
	OR_ASSIGN          // |=
	XOR_ASSIGN         // ^=
	AND_ASSIGN         // &=
	LOGICAL_OR_ASSIGN  // ||=
	LOGICAL_AND_ASSIGN // &&=
	COALESCE_ASSIGN    // ??=

	// Logical operators
	PIPE_PIPE         // ||
	QUESTION_QUESTION // ??
	AMP_AMP           // &&

	// Bitwise operators
	PIPE  // |
	CARET // ^
	AMP   // &

	// Equality operators
	EQ_EQ    // ==
	NOT_EQ   // !=
	EQ_EQ_EQ // ===
	NOT_EQ_EQ // !==

	// Relational operators
	LESS       // <
	LESS_EQ    // <=
	GREATER    // >
	GREATER_EQ // >=

	// Shift operators
	SHL  // <<
	SHR  // >>
	USHR // >>>

	// Arithmetic operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	PERCENT  // %
	POWER    // **

	// Unary operators
	BANG  // !
	TILDE // ~

	// Increment/Decrement
	INC // ++
	DEC // --
)

// typeInfo carries the display name and operator metadata for a TokenType.
// A precedence of 0 means the token is not an infix operator. RightAssoc is
// only meaningful when Precedence is non-zero.
type typeInfo struct {
	Name       string
	Keyword    bool
	Precedence int
	RightAssoc bool
}

// tokenTypes is the closed metadata table for every token kind. The table is
// indexed by TokenType; the markers literalEnd/keywordEnd keep the keyword
// range checks cheap.
var tokenTypes = map[TokenType]typeInfo{
	EOF:      {Name: "eof"},
	IDENT:    {Name: "identifier"},
	NUMBER:   {Name: "number"},
	STRING:   {Name: "string"},
	TEMPLATE: {Name: "templateString"},

	ASYNC:      {Name: "async", Keyword: true},
	AWAIT:      {Name: "await", Keyword: true},
	BREAK:      {Name: "break", Keyword: true},
	CASE:       {Name: "case", Keyword: true},
	CATCH:      {Name: "catch", Keyword: true},
	CONST:      {Name: "const", Keyword: true},
	CONTINUE:   {Name: "continue", Keyword: true},
	DEBUGGER:   {Name: "debugger", Keyword: true},
	DEFAULT:    {Name: "default", Keyword: true},
	DELETE:     {Name: "delete", Keyword: true, Precedence: 15, RightAssoc: true},
	DO:         {Name: "do", Keyword: true},
	ELSE:       {Name: "else", Keyword: true},
	FALSE:      {Name: "false", Keyword: true},
	FINALLY:    {Name: "finally", Keyword: true},
	FOR:        {Name: "for", Keyword: true},
	FUNCTION:   {Name: "function", Keyword: true},
	IF:         {Name: "if", Keyword: true},
	IN:         {Name: "in", Keyword: true, Precedence: 10},
	INSTANCEOF: {Name: "instanceof", Keyword: true, Precedence: 10},
	LET:        {Name: "let", Keyword: true},
	NEW:        {Name: "new", Keyword: true},
	NULL:       {Name: "null", Keyword: true},
	RETURN:     {Name: "return", Keyword: true},
	SUPER:      {Name: "super", Keyword: true},
	SWITCH:     {Name: "switch", Keyword: true},
	THIS:       {Name: "this", Keyword: true},
	THROW:      {Name: "throw", Keyword: true, Precedence: 15, RightAssoc: true},
	TRUE:       {Name: "true", Keyword: true},
	TRY:        {Name: "try", Keyword: true},
	TYPEOF:     {Name: "typeof", Keyword: true, Precedence: 15, RightAssoc: true},
	VAR:        {Name: "var", Keyword: true},
	VOID:       {Name: "void", Keyword: true, Precedence: 15, RightAssoc: true},
	WHILE:      {Name: "while", Keyword: true},
	WITH:       {Name: "with", Keyword: true},
	YIELD:      {Name: "yield", Keyword: true},

	LBRACE:    {Name: "{"},
	RBRACE:    {Name: "}"},
	LPAREN:    {Name: "(", Precedence: 18},
	RPAREN:    {Name: ")", Precedence: 18},
	LBRACK:    {Name: "[", Precedence: 17},
	RBRACK:    {Name: "]", Precedence: 17},
	SEMICOLON: {Name: ";"},
	COLON:     {Name: ":"},
	COMMA:     {Name: ",", Precedence: 1},
	DOT:       {Name: ".", Precedence: 18},
	ELLIPSIS:  {Name: "..."},
	QUESTION:  {Name: "?"},
	ARROW:     {Name: "=>"},

	ASSIGN:             {Name: "=", Precedence: 2, RightAssoc: true},
	PLUS_ASSIGN:        {Name: "+=", Precedence: 2, RightAssoc: true},
	MINUS_ASSIGN:       {Name: "-=", Precedence: 2, RightAssoc: true},
	TIMES_ASSIGN:       {Name: "*=", Precedence: 2, RightAssoc: true},
	DIVIDE_ASSIGN:      {Name: "/=", Precedence: 2, RightAssoc: true},
	PERCENT_ASSIGN:     {Name: "%=", Precedence: 2, RightAssoc: true},
	POWER_ASSIGN:       {Name: "**=", Precedence: 2, RightAssoc: true},
	SHL_ASSIGN:         {Name: "<<=", Precedence: 2, RightAssoc: true},
	SHR_ASSIGN:         {Name: ">>=", Precedence: 2, RightAssoc: true},
	USHR_ASSIGN:        {Name: ">>>=", Precedence: 2, RightAssoc: true},
	OR_ASSIGN:          {Name: "|=", Precedence: 2, RightAssoc: true},
	XOR_ASSIGN:         {Name: "^=", Precedence: 2, RightAssoc: true},
	AND_ASSIGN:         {Name: "&=", Precedence: 2, RightAssoc: true},
	LOGICAL_OR_ASSIGN:  {Name: "||=", Precedence: 2, RightAssoc: true},
	LOGICAL_AND_ASSIGN: {Name: "&&=", Precedence: 2, RightAssoc: true},
	COALESCE_ASSIGN:    {Name: "??=", Precedence: 2, RightAssoc: true},

	PIPE_PIPE:         {Name: "||", Precedence: 4},
	QUESTION_QUESTION: {Name: "??", Precedence: 4},
	AMP_AMP:           {Name: "&&", Precedence: 5},
	PIPE:              {Name: "|", Precedence: 6},
	CARET:             {Name: "^", Precedence: 7},
	AMP:               {Name: "&", Precedence: 8},

	EQ_EQ:     {Name: "==", Precedence: 9},
	NOT_EQ:    {Name: "!=", Precedence: 9},
	EQ_EQ_EQ:  {Name: "===", Precedence: 9},
	NOT_EQ_EQ: {Name: "!==", Precedence: 9},

	LESS:       {Name: "<", Precedence: 10},
	LESS_EQ:    {Name: "<=", Precedence: 10},
	GREATER:    {Name: ">", Precedence: 10},
	GREATER_EQ: {Name: ">=", Precedence: 10},

	SHL:  {Name: "<<", Precedence: 11},
	SHR:  {Name: ">>", Precedence: 11},
	USHR: {Name: ">>>", Precedence: 11},

	PLUS:     {Name: "+", Precedence: 12},
	MINUS:    {Name: "-", Precedence: 12},
	ASTERISK: {Name: "*", Precedence: 13},
	SLASH:    {Name: "/", Precedence: 13},
	PERCENT:  {Name: "%", Precedence: 13},
	POWER:    {Name: "**", Precedence: 14, RightAssoc: true},

	BANG:  {Name: "!", Precedence: 15, RightAssoc: true},
	TILDE: {Name: "~", Precedence: 15, RightAssoc: true},

	INC: {Name: "++"},
	DEC: {Name: "--"},
}

// keywords maps the keyword spelling back to its token type. Built during
// package variable initialization so the dispatch table construction can
// rely on it.
var keywords = buildKeywords()

func buildKeywords() map[string]TokenType {
	kw := make(map[string]TokenType)
	for tt, info := range tokenTypes {
		if info.Keyword {
			kw[info.Name] = tt
		}
	}
	return kw
}

// Two kinds with the same textual name are not permitted; catch it at
// startup rather than during a parse.
func init() {
	seen := make(map[string]TokenType, len(tokenTypes))
	for tt, info := range tokenTypes {
		if prev, ok := seen[info.Name]; ok {
			panic("lexer: duplicate token name " + info.Name + " for " + prev.String() + " and " + tt.String())
		}
		seen[info.Name] = tt
	}
}

// String returns the display name of a TokenType.
func (tt TokenType) String() string {
	if info, ok := tokenTypes[tt]; ok {
		return info.Name
	}
	return "UNKNOWN"
}

// IsKeyword returns true if the token type is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return tt > literalEnd && tt < keywordEnd
}

// Precedence returns the infix binding power of the token type, or 0 when
// the token is not an infix operator.
func (tt TokenType) Precedence() int {
	return tokenTypes[tt].Precedence
}

// IsRightAssociative reports whether the operator groups right-to-left.
// Exponentiation and every assignment operator do.
func (tt TokenType) IsRightAssociative() bool {
	return tokenTypes[tt].RightAssoc
}

// IsAssignment reports whether the token is one of the assignment operators.
func (tt TokenType) IsAssignment() bool {
	return tt >= ASSIGN && tt <= COALESCE_ASSIGN
}

// IsBinaryOperator reports whether the token participates in precedence
// climbing. Assignment (handled in the suffix layer), the comma, and the
// prefix-only operators are excluded even though they carry precedences.
func (tt TokenType) IsBinaryOperator() bool {
	p := tt.Precedence()
	return p >= 4 && p <= 14
}

// IsLogicalOperator reports whether the token builds a LogicalExpression
// rather than a BinaryExpression.
func (tt TokenType) IsLogicalOperator() bool {
	return tt == PIPE_PIPE || tt == AMP_AMP || tt == QUESTION_QUESTION
}

// LookupKeyword returns the keyword token type for a scanned word, or IDENT
// when the word is not reserved.
func LookupKeyword(word string) TokenType {
	if tt, ok := keywords[word]; ok {
		return tt
	}
	return IDENT
}
