package types

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
	"github.com/rohanthewiz/serr"
	"github.com/trollfot/horsetrail/consts"
)

// Built-in type names.
const (
	TypeString  = "string"
	TypeWord    = "word"
	TypeDigits  = "digits"
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeUUID    = "uuid"
	TypeYMD     = "ymd"
	TypeDecimal = "decimal"
)

// builtins returns a fresh copy of the built-in type table so callers can
// Register over entries without affecting other registries.
func builtins() map[string]VarType {
	return map[string]VarType{
		TypeString: {Pattern: consts.PatternDefault},
		TypeWord:   {Pattern: `\w+`},
		TypeDigits: {Pattern: `[0-9]+`},
		TypeInt:    {Pattern: `[0-9]+`, Convert: convertInt},
		TypeFloat:  {Pattern: `[0-9]+(?:\.[0-9]+)?`, Convert: convertFloat},
		TypeUUID: {
			Pattern: `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
			Convert: convertUUID,
		},
		TypeYMD:     {Pattern: `[0-9]{4}-[0-9]{2}-[0-9]{2}`, Convert: convertYMD},
		TypeDecimal: {Pattern: `[0-9]+(?:\.[0-9]+)?`, Convert: convertDecimal},
	}
}

func convertInt(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}
	return n, nil
}

func convertFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}
	return f, nil
}

func convertUUID(raw string) (any, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}
	return id, nil
}

// convertYMD parses an ISO calendar date. The pattern only checks the shape,
// so 2024-13-41 reaches the converter and must fail here. date.ParseISO
// normalizes impossible dates (2024-13-41 becomes 2025-02-10) instead of
// rejecting them, so the calendar fields are validated first.
func convertYMD(raw string) (any, error) {
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}

	d, err := date.ParseISO(raw)
	if err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}
	return d, nil
}

func convertDecimal(raw string) (any, error) {
	d, err := decimal.Parse(raw)
	if err != nil {
		return nil, serr.Wrap(err, "value", raw)
	}
	return d, nil
}
