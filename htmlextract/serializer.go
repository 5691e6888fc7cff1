package htmlextract

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/webarchivetools/warctext"
)

type listFrame struct {
	ordered bool
	counter int
}

// Serializer folds an ordered slice of ExtractNodes into the final plain
// text string. It is read-only over its input: each node is
// visited once, in order, and never revisited.
type Serializer struct {
	opts ExtractOpts

	buf              strings.Builder
	trailingNewlines int

	listStack      []listFrame
	bulletDeferred bool

	// liOwnsFrame tracks, per currently-open <li>, whether that <li> itself
	// pushed the listFrame it's using (a stray <li> with no enclosing
	// <ul>/<ol>), so the matching close pops only frames it pushed.
	liOwnsFrame []bool
}

// NewSerializer builds a Serializer for opts.
func NewSerializer(opts ExtractOpts) *Serializer {
	return &Serializer{opts: opts}
}

// Serialize consumes nodes and returns the final text, right-stripped of
// trailing whitespace.
func (s *Serializer) Serialize(nodes []*ExtractNode) string {
	for _, n := range nodes {
		s.visit(n)
	}
	return strings.TrimRight(s.buf.String(), " \t\n")
}

func (s *Serializer) visit(n *ExtractNode) {
	switch n.ReferenceTag {
	case atom.Ul:
		if !n.IsEndTag {
			s.listStack = append(s.listStack, listFrame{ordered: false})
		} else {
			s.popList()
		}
	case atom.Ol:
		if !n.IsEndTag {
			s.listStack = append(s.listStack, listFrame{ordered: true})
		} else {
			s.popList()
		}
	case atom.Li:
		if !n.IsEndTag {
			owns := len(s.listStack) == 0
			if owns {
				s.listStack = append(s.listStack, listFrame{ordered: false})
			}
			s.liOwnsFrame = append(s.liOwnsFrame, owns)
			s.bulletDeferred = true
		} else if len(s.liOwnsFrame) > 0 {
			last := len(s.liOwnsFrame) - 1
			owns := s.liOwnsFrame[last]
			s.liOwnsFrame = s.liOwnsFrame[:last]
			if owns {
				s.popList()
			}
		}
	}

	text := n.text()
	if text == "" {
		if !n.CollapseMargins && s.opts.PreserveFormatting {
			s.ensureBreak(1)
		}
		return
	}

	if !s.opts.PreserveFormatting {
		if s.buf.Len() > 0 {
			s.write(" ")
		}
		s.write(strings.TrimRight(text, " "))
		return
	}

	depth := len(s.listStack)

	if n.ReferenceTag == atom.Td || n.ReferenceTag == atom.Th {
		if s.buf.Len() > 0 && s.trailingNewlines == 0 {
			s.write("\t\t")
		}
		body := text
		if !n.IsPre {
			body = strings.TrimRight(body, " ")
		}
		s.write(warctext.IndentNewlines(body, depth))
		return
	}

	margin := 1
	if n.IsBigBlock && !s.bulletDeferred {
		margin = 2
	}
	s.ensureBreak(margin)

	prefix := s.bulletPrefix()
	lineIndent := strings.Repeat("  ", depth)
	body := text
	if !n.IsPre {
		body = strings.TrimRight(body, " ")
	}
	body = warctext.IndentNewlines(body, depth)

	s.write(lineIndent + prefix + body)
}

// bulletPrefix consumes a pending list-item marker, if any, and advances
// the enclosing list's counter.
func (s *Serializer) bulletPrefix() string {
	if !s.bulletDeferred || !s.opts.ListBullets || len(s.listStack) == 0 {
		return ""
	}
	s.bulletDeferred = false
	top := &s.listStack[len(s.listStack)-1]
	if top.ordered {
		top.counter++
		return strconv.Itoa(top.counter) + ". "
	}
	return "• "
}

func (s *Serializer) popList() {
	if len(s.listStack) > 0 {
		s.listStack = s.listStack[:len(s.listStack)-1]
	}
}

// write appends str to the buffer and updates the trailing-newline count
// used by ensureBreak.
func (s *Serializer) write(str string) {
	if str == "" {
		return
	}
	s.buf.WriteString(str)
	n := 0
	for i := len(str) - 1; i >= 0 && str[i] == '\n'; i-- {
		n++
	}
	if n == len(str) {
		s.trailingNewlines += n
	} else {
		s.trailingNewlines = n
	}
}

// ensureBreak pads the buffer with newlines until it ends in at least want
// (capped at 2, so output never contains three consecutive newlines).
// A still-empty buffer gets no leading margin.
func (s *Serializer) ensureBreak(want int) {
	if s.buf.Len() == 0 {
		return
	}
	if want > 2 {
		want = 2
	}
	if s.trailingNewlines >= want {
		return
	}
	s.write(strings.Repeat("\n", want-s.trailingNewlines))
}
