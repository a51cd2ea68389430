package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var readPassword = term.ReadPassword

// readLine returns one line without its line ending. A final line that is
// not newline-terminated is still returned; io.EOF is reported only when
// nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetSimpleText asks a single-line question:
//
//	Email
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s\n> ", prompt)
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo. Callers wipe
// the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// GetMultiline collects post text until a blank line or end of input.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fmt.Fprintf(w, "%s\n(finish with an empty line)\n", prompt)

	var b strings.Builder
	for {
		line, err := readLine(reader)
		if err != nil || line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}

	return strings.TrimSpace(b.String()), nil
}
