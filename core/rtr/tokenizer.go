package rtr

import (
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/trollfot/horsetrail/consts"
)

// token is one literal run or one placeholder within a single path level.
// For placeholders, text holds the source between the braces ("name" or
// "name:type"); for literals it holds the run verbatim.
type token struct {
	text  string
	param bool
}

// tokenize splits a raw template into its '/'-delimited levels and each
// level into literal and placeholder tokens. Leading and trailing slashes
// are ignored, so "/users/{id}/" and "users/{id}" tokenize identically.
// An empty template yields no levels.
//
// An opening brace with no matching close brace is a syntax error and is
// rejected here, before anything touches the trie.
func tokenize(template string) ([][]token, error) {
	template = strings.Trim(template, "/")
	if template == "" {
		return nil, nil
	}

	var levels [][]token
	var level []token

	for i := 0; i < len(template); {
		switch template[i] {
		case consts.RuneFwdSlash:
			// Empty levels (from "a//b") are collapsed rather than kept
			// as zero-token segments.
			if len(level) > 0 {
				levels = append(levels, level)
				level = nil
			}
			i++

		case consts.RuneOpenBrace:
			end := strings.IndexByte(template[i:], consts.RuneCloseBrace)
			if end < 0 {
				return nil, serr.New("unterminated placeholder in route template",
					"template", template)
			}
			level = append(level, token{text: template[i+1 : i+end], param: true})
			i += end + 1

		default:
			j := i
			for j < len(template) &&
				template[j] != consts.RuneOpenBrace &&
				template[j] != consts.RuneFwdSlash {
				j++
			}
			level = append(level, token{text: template[i:j]})
			i = j
		}
	}

	if len(level) > 0 {
		levels = append(levels, level)
	}

	return levels, nil
}

// splitLevels breaks an incoming request path into its levels.
// Slashes are trimmed at both ends and runs of slashes collapse, matching
// the normalization applied to templates by tokenize.
func splitLevels(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	parts := strings.Split(path, "/")
	levels := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			levels = append(levels, part)
		}
	}

	return levels
}
