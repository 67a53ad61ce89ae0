// Package diff renders line diffs between mutation documents.
package diff

import (
	"strings"

	"github.com/muesli/termenv"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"go.trai.ch/fuse/internal/ui/output"
	"go.trai.ch/fuse/internal/ui/style"
)

// Op classifies a diff line.
type Op int

const (
	// Equal lines appear in both texts.
	Equal Op = iota
	// Insert lines appear only in the new text.
	Insert
	// Delete lines appear only in the old text.
	Delete
)

// Line is one line of a line diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines computes the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, Line{Op: op, Text: text})
		}
	}
	return lines
}

// Changed reports whether lines contain any insertion or deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Render prints lines with "+ ", "- " or "  " prefixes, coloring changes on out.
func Render(out *termenv.Output, lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		switch l.Op {
		case Insert:
			sb.WriteString(output.Paint(out, style.Plus+" "+l.Text, style.Green))
		case Delete:
			sb.WriteString(output.Paint(out, style.Minus+" "+l.Text, style.Red))
		case Equal:
			sb.WriteString("  " + l.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
