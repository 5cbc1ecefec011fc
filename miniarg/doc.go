// Package miniarg tokenizes and parses minimal command lines of the form
//
//	program -key value -key2 "value with spaces" ...
//
// Tokenize splits a line into zero-copy substrings honoring single and double
// quotes. Parse pairs the tokens after the program name with a caller-supplied,
// ordered set of accepted keys and yields one Result per pair or error. Errors
// never stop the sequence; callers pick fail-fast (Collect) or collect-all
// (CollectAll) semantics.
//
// Neither the lexer nor the matcher allocates on the success path, so both are
// usable where the heap is a concern. Split and Collect materialize owned slices
// for everyone else.
package miniarg
