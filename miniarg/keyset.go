package miniarg

import (
	"strings"

	"github.com/dzonerzy/go-miniarg/internal/intern"
)

// Def declares one variant of a closed key set together with its help text.
type Def[K Key] struct {
	Key K
	Doc string
}

// KeySet is an ordered, closed set of keys, typically the constants of one
// enumerated type:
//
//	type Option int
//
//	const (
//		Input Option = iota
//		Verbose
//	)
//
//	func (o Option) String() string { ... } // "Input", "Verbose"
//
//	var options = miniarg.Define(
//		miniarg.Def[Option]{Key: Input, Doc: "file to read"},
//		miniarg.Def[Option]{Key: Verbose, Doc: "log level"},
//	)
type KeySet[K Key] struct {
	keys  []K
	names []string
	docs  []string
	help  string
}

// Define builds a key set in declaration order.
func Define[K Key](defs ...Def[K]) *KeySet[K] {
	ks := &KeySet[K]{
		keys:  make([]K, len(defs)),
		names: make([]string, len(defs)),
		docs:  make([]string, len(defs)),
	}
	for i, d := range defs {
		ks.keys[i] = d.Key
		ks.names[i] = intern.Intern(NormalizeKey(d.Key.String()))
		ks.docs[i] = strings.TrimSpace(d.Doc)
	}
	ks.help = ks.buildHelp()
	return ks
}

// Keys returns the variants in declaration order.
func (ks *KeySet[K]) Keys() []K { return ks.keys }

// Names returns the normalized key names in declaration order.
func (ks *KeySet[K]) Names() []string { return ks.names }

// HelpText returns one line per key, "-<name>\t<doc>", separated by newlines.
func (ks *KeySet[K]) HelpText() string { return ks.help }

func (ks *KeySet[K]) buildHelp() string {
	var b strings.Builder
	for i, name := range ks.names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('-')
		b.WriteString(name)
		b.WriteByte('\t')
		b.WriteString(ks.docs[i])
	}
	return b.String()
}

// Parser returns a new parser over the set's keys.
func (ks *KeySet[K]) Parser() *Parser[K] {
	return NewParser(ks.keys)
}

// Parse matches line against the set with default options.
func (ks *KeySet[K]) Parse(line string) Matcher[K] {
	return ks.Parser().Parse(line)
}
