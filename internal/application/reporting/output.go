package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// WriteGitHubOutput writes the issue as GitHub Actions step outputs:
// issue_title, issue_body (heredoc) and has_relevant_dates.  The heredoc
// delimiter is fixed; a body containing a bare "EOF" line is refused rather
// than silently corrupting the output file.
func WriteGitHubOutput(w io.Writer, issue Issue) error {
	for _, line := range strings.Split(issue.Body, "\n") {
		if strings.TrimSpace(line) == "EOF" {
			return errors.New(errors.ErrCodeValidation, "issue body contains the heredoc delimiter")
		}
	}

	_, err := fmt.Fprintf(w, "issue_title=%s\nissue_body<<EOF\n%s\nEOF\nhas_relevant_dates=%t\n",
		strings.ReplaceAll(issue.Title, "\n", " "), issue.Body, issue.HasEvents)
	return err
}

// AppendGitHubOutput appends the step outputs to the file at path, normally
// the value of the GITHUB_OUTPUT environment variable.
func AppendGitHubOutput(path string, issue Issue) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to open github output file")
	}
	defer f.Close()
	return WriteGitHubOutput(f, issue)
}
