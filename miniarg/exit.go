package miniarg

import (
    "errors"
    "reflect"
)

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
    Success       int // default: 0
    GeneralError  int // default: 1
    MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
    return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodes maps parse errors and other error types to process exit codes.
type ExitCodes struct {
    codesByParse map[ErrorType]int
    codesByType  map[reflect.Type]int
    defaults     ExitCodeDefaults
}

// NewExitCodes returns a mapping where every parse error category is a misusage.
func NewExitCodes() *ExitCodes {
    m := &ExitCodes{
        codesByParse: make(map[ErrorType]int),
        codesByType:  make(map[reflect.Type]int),
        defaults:     defaultExitDefaults(),
    }
    m.codesByParse[ErrorTypeNotAKey] = m.defaults.MisusageError
    m.codesByParse[ErrorTypeUnknownKey] = m.defaults.MisusageError
    m.codesByParse[ErrorTypeUnknown] = m.defaults.GeneralError
    return m
}

// DefineParse overrides the exit code used for a parse error category.
func (e *ExitCodes) DefineParse(typ ErrorType, code int) *ExitCodes { e.codesByParse[typ] = code; return e }

// DefineError maps a concrete error value (by its dynamic type) to an exit code.
func (e *ExitCodes) DefineError(err error, code int) *ExitCodes {
    if err == nil { return e }
    e.codesByType[reflect.TypeOf(err)] = code
    return e
}

// Default replaces the default codes.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes { e.defaults = d; return e }

// Resolve converts an error to an exit code.
// Precedence:
//   1) ParseError category mapping (DefineParse)
//   2) Concrete error type mapping (DefineError)
//   3) Default codes
// Joined errors (from CollectAll) resolve by their first parse error.
func (e *ExitCodes) Resolve(err error) int {
    if err == nil { return e.defaults.Success }

    var perr *ParseError
    if errors.As(err, &perr) {
        if code, ok := e.codesByParse[perr.Type]; ok {
            return code
        }
        return e.defaults.GeneralError
    }

    for t, code := range e.codesByType {
        if errors.As(err, reflect.New(t).Interface()) {
            return code
        }
    }

    return e.defaults.GeneralError
}
