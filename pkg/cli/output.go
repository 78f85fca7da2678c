package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/seido-lab/chiron/pkg/domain/model"
)

var (
	sourceColor = color.New(color.FgCyan)
	noticeColor = color.New(color.FgYellow)
	promptColor = color.New(color.FgGreen, color.Bold)
)

// printAnswer writes an answer to w, with a source line when the answer is
// grounded in a namespace
func printAnswer(w io.Writer, answer *model.Answer) {
	if answer.SourceNamespaceID != "" {
		sourceColor.Fprintf(w, "[%s]\n", answer.SourceNamespaceID)
	}
	fmt.Fprintln(w, answer.Text)
}

// printNotice writes a highlighted informational line to w
func printNotice(w io.Writer, format string, args ...any) {
	noticeColor.Fprintln(w, fmt.Sprintf(format, args...))
}
