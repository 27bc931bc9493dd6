package tokenizer

// Context is a frame-local bitfield describing where in the grammar a
// speculative parse currently sits. Styled exactly like the teacher's
// scanner.Mode bitflags (type Mode uint; const ( ScanComments Mode = 1 <<
// iota; ... )), generalized from a single scan-wide mode to a per-frame
// value since each nested construct needs its own independent set of bits.
type Context uint32

const (
	ContextTemplate Context = 1 << iota
	ContextTemplateName
	ContextTemplateParamKey
	ContextTemplateParamValue

	ContextArgument
	ContextArgumentName
	ContextArgumentDefault

	ContextWikilink
	ContextWikilinkTitle
	ContextWikilinkText

	ContextHeading
	ContextHeadingLevel1
	ContextHeadingLevel2
	ContextHeadingLevel3
	ContextHeadingLevel4
	ContextHeadingLevel5
	ContextHeadingLevel6

	ContextComment

	// Safety-verifier state, toggled by verifySafe, never set by callers.
	ContextFailNext
	ContextFailOnLBrace
	ContextFailOnRBrace
	ContextFailOnText
	ContextHasText
)

// ContextHeadingLevelMask isolates whichever single ContextHeadingLevelN bit
// is set; exactly one is set at a time while inside a heading.
const ContextHeadingLevelMask = ContextHeadingLevel1 | ContextHeadingLevel2 |
	ContextHeadingLevel3 | ContextHeadingLevel4 | ContextHeadingLevel5 | ContextHeadingLevel6

// failContexts: reaching end-of-input while any of these bits is set fails
// the current route instead of closing it cleanly.
const failContexts = ContextTemplate | ContextArgument | ContextWikilink | ContextHeading | ContextComment

// unsafeContexts: these contexts route every character through verifySafe
// before the ordinary marker dispatch runs.
const unsafeContexts = ContextTemplateName | ContextWikilinkTitle | ContextTemplateParamKey | ContextArgumentName

// headingLevelContext returns the ContextHeadingLevelN bit for level, which
// must be in [1, 6].
func headingLevelContext(level int) Context {
	return ContextHeadingLevel1 << uint(level-1)
}

// headingLevelFromContext recovers the level encoded by whichever
// ContextHeadingLevelN bit is set in ctx, or 0 if none is set.
func headingLevelFromContext(ctx Context) int {
	bit := ctx & ContextHeadingLevelMask
	for level := 1; level <= 6; level++ {
		if bit == headingLevelContext(level) {
			return level
		}
	}
	return 0
}

// globalFlags is the tokenizer-wide bitfield (one per Tokenizer instance,
// not per frame).
type globalFlags uint32

// globalHeading prevents a heading from nesting inside another heading's
// title while it is being parsed.
const globalHeading globalFlags = 1 << iota
