package consts

// Template syntax bytes.
const (
	RuneFwdSlash   byte = '/'
	RuneOpenBrace  byte = '{'
	RuneCloseBrace byte = '}'
	RuneColon      byte = ':'
)

const (
	// PatternDefault matches any run of characters within a single path level.
	// It is the fragment used when a placeholder omits its type.
	PatternDefault = `[^/]+`
)
