package rtr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rohanthewiz/serr"
	"github.com/trollfot/horsetrail/types"
)

// Segment is the compiled matcher for one '/'-delimited level of a template.
//
// A level made of a single literal token compiles to an exact segment and is
// dispatched through the parent node's map, no regex involved. Any level
// containing a placeholder compiles to an anchored regex with one named
// group per placeholder.
//
// A segment can be an internal hop for one template and terminal for
// another ("a/{x}" and "a/{x}/b" share the {x} node), so terminal and
// payload are mutated in place during insertion and never reset.
type Segment struct {
	raw        string // the level's source text, kept for route listings
	literal    string // exact value, set only when exact
	expr       *regexp.Regexp
	key        uint64 // hash of the matcher text; identity for sibling dedup
	complexity int    // token count; orders dynamic siblings
	exact      bool
	terminal   bool
	converters map[string]types.ConvertFunc
	payload    Payload
}

// compileSegment turns one level's token sequence into a Segment.
// Placeholder types are resolved against the registry at compile time, so a
// type registered after a template was added does not affect it.
func compileSegment(tokens []token, terminal bool, reg *types.Registry) (*Segment, error) {
	if len(tokens) == 1 && !tokens[0].param {
		lit := tokens[0].text
		return &Segment{
			raw:        lit,
			literal:    lit,
			key:        xxhash.Sum64String(lit),
			complexity: 1,
			exact:      true,
			terminal:   terminal,
		}, nil
	}

	var raw, pattern strings.Builder
	var converters map[string]types.ConvertFunc

	pattern.WriteByte('^')

	for _, tok := range tokens {
		if !tok.param {
			raw.WriteString(tok.text)
			pattern.WriteString(regexp.QuoteMeta(tok.text))
			continue
		}

		raw.WriteString("{" + tok.text + "}")

		name, typeName, _ := strings.Cut(tok.text, ":")
		vt := reg.Lookup(typeName)

		fmt.Fprintf(&pattern, "(?P<%s>%s)", name, vt.Pattern)

		if vt.Convert != nil {
			if converters == nil {
				converters = make(map[string]types.ConvertFunc)
			}
			converters[name] = vt.Convert
		}
	}

	pattern.WriteByte('$')

	expr, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, serr.Wrap(err, "level", raw.String())
	}

	return &Segment{
		raw:        raw.String(),
		expr:       expr,
		key:        xxhash.Sum64String(expr.String()),
		complexity: len(tokens),
		terminal:   terminal,
		converters: converters,
	}, nil
}

// attachPayload marks the segment terminal and attaches the payload.
// When the segment already holds a payload, the new keys are merged in
// (later keys win) instead of replacing the namespace wholesale.
func (seg *Segment) attachPayload(p Payload) {
	if seg.terminal && seg.payload != nil {
		seg.payload.merge(p)
		return
	}

	seg.terminal = true
	seg.payload = p
}

// bind converts the captures of a successful submatch and stores them under
// their placeholder names. Placeholders without a registered converter bind
// the raw string. A converter failure aborts the whole lookup, it is not a
// reason to try a sibling candidate.
func (seg *Segment) bind(vars map[string]any, submatch []string) error {
	for i, name := range seg.expr.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}

		raw := submatch[i]

		conv, ok := seg.converters[name]
		if !ok {
			vars[name] = raw
			continue
		}

		val, err := conv(raw)
		if err != nil {
			return serr.Wrap(err, "conversion failed for path variable "+name)
		}
		vars[name] = val
	}

	return nil
}
