// Package tree is the in-memory parse-tree model shared by SemanticAnalyzer
// (L3) and CodeGen (L4): a Branch/Leaf tree read from the indentation-based
// textual dump format an external parser (L2, out of scope) produces
// (spec.md §3.4).
package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Node is either a Branch (a grammar nonterminal with children) or a Leaf
// (a terminal token).
type Node interface {
	symbol() string
}

// Branch is one nonterminal production instance. Type, NType, LValue,
// Amount and Arguments are left unset by Parse; SemanticAnalyzer fills them
// in while walking the tree (spec.md §3.5 "typed tree").
type Branch struct {
	Symbol   string
	Children []Node

	Type          Object
	NType         Object
	LValue        bool
	Amount        int
	Arguments     []Object
	ArgumentNames []string
}

// Leaf is one terminal token carried over from L1-Run's token stream:
// Symbol is the unit name, Line its source line as text, Data its lexeme.
type Leaf struct {
	Symbol string
	Line   string
	Data   string
}

func (b *Branch) symbol() string { return b.Symbol }
func (l *Leaf) symbol() string   { return l.Symbol }

// Parse reads the indentation-delimited dump format: the first line is the
// root production's symbol, and every following line belongs to whichever
// enclosing branch has a strictly smaller indentation depth (spec.md §3.4,
// grounded on original_source/L3/main.cpp loadGenTree).
func Parse(r io.Reader) (*Branch, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("tree: empty parse tree")
	}

	root := &Branch{Symbol: lines[0]}
	p := &parser{lines: lines, pos: 1}
	if err := p.fill(root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lines []string
	pos   int
}

// fill appends children to branch for as long as the next unconsumed line
// is indented strictly more than depth, recursing one level deeper for
// every nested branch it opens. A line indented at or before depth belongs
// to an enclosing branch and is left for the caller to consume.
func (p *parser) fill(branch *Branch, depth int) error {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		indent := strings.IndexFunc(line, func(r rune) bool { return r != ' ' })
		if indent < 0 {
			return fmt.Errorf("tree: blank line at input line %d", p.pos+1)
		}
		if indent <= depth {
			return nil
		}

		content := line[indent:]
		p.pos++

		if strings.HasPrefix(content, "<") {
			child := &Branch{Symbol: content}
			branch.Children = append(branch.Children, child)
			if err := p.fill(child, indent); err != nil {
				return err
			}
		} else {
			leaf, err := parseLeaf(content)
			if err != nil {
				return err
			}
			branch.Children = append(branch.Children, leaf)
		}
	}
	return nil
}

func parseLeaf(content string) (*Leaf, error) {
	first := strings.IndexByte(content, ' ')
	if first < 0 {
		return nil, fmt.Errorf("tree: malformed leaf line %q", content)
	}
	rest := content[first+1:]
	second := strings.IndexByte(rest, ' ')
	if second < 0 {
		return nil, fmt.Errorf("tree: malformed leaf line %q", content)
	}

	return &Leaf{
		Symbol: content[:first],
		Line:   rest[:second],
		Data:   rest[second+1:],
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// FormatProduction renders branch the way the first semantic or code-gen
// violation is reported: "LHS ::= S1 S2 ...", terminal children rendered
// "SYMBOL(line,lexeme)" (spec.md §4.3, grounded on original_source/L3/main.cpp
// printError).
func FormatProduction(branch *Branch) string {
	var sb strings.Builder
	sb.WriteString(branch.Symbol)
	sb.WriteString(" ::=")
	for _, child := range branch.Children {
		sb.WriteByte(' ')
		switch c := child.(type) {
		case *Branch:
			sb.WriteString(c.Symbol)
		case *Leaf:
			sb.WriteString(c.Symbol)
			sb.WriteByte('(')
			sb.WriteString(c.Line)
			sb.WriteByte(',')
			sb.WriteString(c.Data)
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
