package tokenizer

import "github.com/jschaf/wikitext/token"

// frame is one route: an open token list, the context it was pushed with,
// and the pending textbuffer that precedes whatever comes next in that
// list. Frames form a singly linked stack via parent; the stack is
// strictly tree-shaped and never exposes ordering beyond push/delete.
type frame struct {
	tokens  []token.Token
	context Context
	buf     textbuffer
	parent  *frame
}

// push allocates a new frame with an empty token list and textbuffer and
// links it as the new top of the route stack.
func (t *Tokenizer) push(ctx Context) {
	t.top = &frame{context: ctx, parent: t.top}
	t.logPush(ctx)
}

// flush moves the current frame's pending textbuffer into a single Text
// token on its token list, per the invariant that the textbuffer always
// precedes any token not yet in token_list.
func (f *frame) flush(t *Tokenizer) {
	if f.buf.empty() {
		return
	}
	f.tokens = append(f.tokens, token.NewText(t.gotokPos(t.head), f.buf.render()))
	f.buf.clear()
}

// write flushes the textbuffer, then appends tok to the current frame.
func (t *Tokenizer) write(tok token.Token) {
	t.top.flush(t)
	t.top.tokens = append(t.top.tokens, tok)
}

// writeText appends a single character to the current frame's textbuffer
// without yet materializing a Text token.
func (t *Tokenizer) writeText(ch rune) {
	t.top.buf.append(ch)
}

// writeFirst returns list with tok prepended. parseTemplate and
// parseArgument apply it to the current frame's own token list, so a
// construct's Open token lands in front of whatever an earlier reduction
// of the same brace run already wrote there, nesting that earlier
// construct inside the new one.
func writeFirst(tok token.Token, list []token.Token) []token.Token {
	out := make([]token.Token, 0, len(list)+1)
	out = append(out, tok)
	out = append(out, list...)
	return out
}

// writeAll splices toks into the current frame. If the first token of toks
// is a Text token, its text is merged into the pending textbuffer instead
// of being pushed as a separate token, avoiding two adjacent Text tokens;
// this mirrors Tokenizer_write_all in the original implementation exactly.
func (t *Tokenizer) writeAll(toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	rest := toks
	if toks[0].Kind == token.Text {
		t.top.buf.appendString(toks[0].Text)
		rest = toks[1:]
	}
	if len(rest) == 0 {
		return
	}
	t.top.flush(t)
	t.top.tokens = append(t.top.tokens, rest...)
}

// pop flushes and detaches the current frame, returning its token list and
// restoring its parent as the new top.
func (t *Tokenizer) pop() []token.Token {
	top := t.top
	top.flush(t)
	t.top = top.parent
	t.logPop(top.context, len(top.tokens))
	return top.tokens
}

// popKeepingContext pops the current frame but carries its context forward
// onto the new top, used when a sub-frame (e.g. a template parameter key)
// closes but its context bits must persist on the frame that continues the
// construct. Grounded on Tokenizer_pop_keeping_context, which replaces the
// parent's context with the popped frame's context rather than discarding
// it.
func (t *Tokenizer) popKeepingContext() []token.Token {
	top := t.top
	top.flush(t)
	ctx := top.context
	t.top = top.parent
	t.top.context = ctx
	t.logPop(top.context, len(top.tokens))
	return top.tokens
}

// deleteTop discards the current frame without splicing its tokens
// anywhere, used on route failure. Go's garbage collector reclaims the
// frame and its textbuffer chunks; the original's manual free() calls have
// no analog here.
func (t *Tokenizer) deleteTop() {
	top := t.top
	t.top = top.parent
	t.logFail(top.context)
}
