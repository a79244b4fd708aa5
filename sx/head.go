package sx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Tag enumerates the head tags known to sxtools. Any other head is represented by
// OtherTag, together with its name.
type Tag uint8

// Known head tags.
const (
	OtherTag      Tag = iota // head not in the enumeration, see Head.Name()
	BlockTag                 // block of statements
	CallTag                  // function call, operator application
	FunctionTag              // long-form function definition
	ArrowTag                 // anonymous function: args -> body
	AssignTag                // assignment, short-form function definition
	IfTag                    // conditional
	TupleTag                 // tuple construction, parameter list of anonymous functions
	ParametersTag            // keyword parameters
	LineTag                  // line-marker
	DeclTag                  // type annotation x::T
	WhereTag                 // where clause of a definition
	CurlyTag                 // type parameters F{T}
	SubtypeTag               // subtype relation A <: B
	KwTag                    // keyword argument k=v
	SplatTag                 // splat x...
	RefTag                   // indexing a[i]
	DotTag                   // field access a.f
	QuoteTag                 // quoted node
	MacroCallTag             // macro call
	ReturnTag                // return statement
	maxTag
)

var tagNames = [...]string{
	OtherTag:      "",
	BlockTag:      "block",
	CallTag:       "call",
	FunctionTag:   "function",
	ArrowTag:      "->",
	AssignTag:     "=",
	IfTag:         "if",
	TupleTag:      "tuple",
	ParametersTag: "parameters",
	LineTag:       "line-marker",
	DeclTag:       "::",
	WhereTag:      "where",
	CurlyTag:      "curly",
	SubtypeTag:    "<:",
	KwTag:         "kw",
	SplatTag:      "...",
	RefTag:        "ref",
	DotTag:        ".",
	QuoteTag:      "quote",
	MacroCallTag:  "macrocall",
	ReturnTag:     "return",
}

var tagsByName map[string]Tag

func init() {
	tagsByName = make(map[string]Tag, len(tagNames))
	for t := BlockTag; t < maxTag; t++ {
		tagsByName[tagNames[t]] = t
	}
}

func (t Tag) String() string {
	if t < maxTag {
		if t == OtherTag {
			return "<other>"
		}
		return tagNames[t]
	}
	return "<invalid>"
}

// Head is the head of a compound expression. Heads are comparable values; a head
// for a known tag never carries a name, therefore
//
//    HeadOf("call") == Call
//
// holds.
type Head struct {
	Tag  Tag
	name string // only set for OtherTag
}

// Pre-defined heads for all known tags.
var (
	Block      = Head{Tag: BlockTag}
	Call       = Head{Tag: CallTag}
	Function   = Head{Tag: FunctionTag}
	Arrow      = Head{Tag: ArrowTag}
	Assign     = Head{Tag: AssignTag}
	If         = Head{Tag: IfTag}
	Tuple      = Head{Tag: TupleTag}
	Parameters = Head{Tag: ParametersTag}
	Line       = Head{Tag: LineTag}
	Decl       = Head{Tag: DeclTag}
	Where      = Head{Tag: WhereTag}
	Curly      = Head{Tag: CurlyTag}
	Subtype    = Head{Tag: SubtypeTag}
	Kw         = Head{Tag: KwTag}
	Splat      = Head{Tag: SplatTag}
	Ref        = Head{Tag: RefTag}
	Dot        = Head{Tag: DotTag}
	Quote      = Head{Tag: QuoteTag}
	MacroCall  = Head{Tag: MacroCallTag}
	Return     = Head{Tag: ReturnTag}
)

// HeadOf returns the head for a tag name. Names of known tags map to their
// pre-defined heads, all other names create an opaque head carrying the name.
func HeadOf(name string) Head {
	if t, ok := tagsByName[name]; ok {
		return Head{Tag: t}
	}
	return Head{Tag: OtherTag, name: name}
}

// Name returns the textual form of a head.
func (h Head) Name() string {
	if h.Tag == OtherTag {
		return h.name
	}
	return h.Tag.String()
}

// text is the head's name as written in the text form.
func (h Head) text() string {
	return Sym(h.Name()).String()
}

// IsOther is true for heads not in the enumeration of known tags.
func (h Head) IsOther() bool {
	return h.Tag == OtherTag
}

func (h Head) String() string {
	return h.Name()
}
