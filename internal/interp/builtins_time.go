package interp

import (
	"time"

	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// builtinSleep suspends the interpreter for x seconds, integer or float
// (spec.md §4.4/§5): one of the three permitted suspension points, never
// run concurrently with other evaluation in this invocation.
func builtinSleep(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("SLEEP", args, pos, 1); err != nil {
		return nil, err
	}
	secs, err := requireNumber(args[0], pos, "SLEEP argument")
	if err != nil {
		return nil, err
	}
	if secs < 0 {
		return nil, errors.NewAt(errors.DomainError, pos, "SLEEP: argument must be non-negative, got %v", secs)
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return Null, nil
}

// builtinTimestamp with no arguments returns the current Unix time as a
// Float (spec.md §4.4); with one String argument it parses
// "YYYY-MM-DD HH:MM:SS.ffffff" in local time and returns its Unix time.
func builtinTimestamp(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	switch len(args) {
	case 0:
		now := time.Now()
		return &FloatValue{Value: float64(now.UnixNano()) / 1e9}, nil
	case 1:
		s, err := requireString(args[0], pos, "TIMESTAMP argument")
		if err != nil {
			return nil, err
		}
		t, perr := time.ParseInLocation(timestampLayout, s, time.Local)
		if perr != nil {
			return nil, errors.NewAt(errors.TypeError, pos, "TIMESTAMP: cannot parse %q: %v", s, perr)
		}
		return &FloatValue{Value: float64(t.UnixNano()) / 1e9}, nil
	}
	return nil, arityError("TIMESTAMP", pos, 1, len(args))
}

// builtinTime formats a Unix timestamp in local time (spec.md §4.4).
func builtinTime(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("TIME", args, pos, 1); err != nil {
		return nil, err
	}
	secs, err := requireNumber(args[0], pos, "TIME argument")
	if err != nil {
		return nil, err
	}
	return &StringValue{Value: unixToTime(secs, time.Local).Format(timestampLayout)}, nil
}

// builtinTimezone formats a Unix timestamp in the named IANA zone
// (spec.md §4.4); an unknown zone name is a catchable error.
func builtinTimezone(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("TIMEZONE", args, pos, 2); err != nil {
		return nil, err
	}
	secs, err := requireNumber(args[0], pos, "TIMEZONE timestamp")
	if err != nil {
		return nil, err
	}
	name, err := requireString(args[1], pos, "TIMEZONE name")
	if err != nil {
		return nil, err
	}
	loc, lerr := time.LoadLocation(name)
	if lerr != nil {
		return nil, errors.NewAt(errors.DomainError, pos, "TIMEZONE: unknown zone %q", name)
	}
	return &StringValue{Value: unixToTime(secs, loc).Format(timestampLayout)}, nil
}

func unixToTime(secs float64, loc *time.Location) time.Time {
	whole := int64(secs)
	frac := secs - float64(whole)
	return time.Unix(whole, int64(frac*1e9)).In(loc)
}

// commonTimezones is a curated, stable subset of the IANA database; the
// standard library has no portable API to enumerate the full zoneinfo
// tree, so TIMEZONES() returns this representative list rather than
// depending on the host's filesystem layout.
var commonTimezones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Moscow",
	"Africa/Cairo",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
}

func builtinTimezones(it *Interpreter, env *Environment, args []Value, pos lexer.Position) (Value, error) {
	if err := requireArgc("TIMEZONES", args, pos, 0); err != nil {
		return nil, err
	}
	out := &ListValue{Elements: make([]Value, len(commonTimezones))}
	for i, name := range commonTimezones {
		out.Elements[i] = &StringValue{Value: name}
	}
	return out, nil
}
