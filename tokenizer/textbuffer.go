package tokenizer

// textChunkSize bounds each link of the textbuffer's chunk list. Grounded on
// the chunked-growth idea in the original tokenizer.c Textbuffer (a linked
// list of fixed-size arrays, newest chunk first, rendered oldest-first),
// adapted here to hold runes instead of bytes since read/readBackwards index
// by code point, not byte offset.
const textChunkSize = 256

// textChunk is one link in a textbuffer, holding up to textChunkSize runes.
// Chunks are linked newest-first (prev points to the older chunk) so that
// append is O(1) amortized without ever shifting existing content.
type textChunk struct {
	data [textChunkSize]rune
	len  int
	prev *textChunk
}

// textbuffer is the pending plain-text accumulator for one route frame. A
// non-empty render equals the in-order concatenation of every append since
// the last clear, per component A's invariant.
type textbuffer struct {
	head *textChunk // newest chunk
}

func (b *textbuffer) append(ch rune) {
	if b.head == nil || b.head.len == textChunkSize {
		b.head = &textChunk{prev: b.head}
	}
	b.head.data[b.head.len] = ch
	b.head.len++
}

func (b *textbuffer) appendString(s string) {
	for _, r := range s {
		b.append(r)
	}
}

func (b *textbuffer) empty() bool {
	return b.head == nil
}

// render concatenates every appended rune in the order it was appended.
func (b *textbuffer) render() string {
	if b.head == nil {
		return ""
	}
	n := 0
	for c := b.head; c != nil; c = c.prev {
		n += c.len
	}
	runes := make([]rune, n)
	i := n
	for c := b.head; c != nil; c = c.prev {
		i -= c.len
		copy(runes[i:i+c.len], c.data[:c.len])
	}
	return string(runes)
}

func (b *textbuffer) clear() {
	b.head = nil
}
