// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// QuestionAction names the operation a confirmation question is about.
type QuestionAction int

const (
	// ActionDecompression asks before an operation that decompresses an
	// unbounded amount of data into memory or a spill file.
	ActionDecompression QuestionAction = iota
)

// QuestionPolicy decides how confirmation questions are answered.
type QuestionPolicy int

const (
	// PolicyAsk prompts the user interactively.
	PolicyAsk QuestionPolicy = iota

	// PolicyAlwaysYes proceeds without asking.
	PolicyAlwaysYes

	// PolicyAlwaysNo refuses without asking.
	PolicyAlwaysNo
)

// outputMu serializes warning-plus-prompt blocks so they stay visually
// adjacent when other goroutines write to the same terminal. It is held only
// for the duration of "print warning, read confirmation", never across
// decoding.
var outputMu sync.Mutex

// warnAboutMaterialization prints the memory warning for path. Callers must
// hold outputMu.
func warnAboutMaterialization(cfg *Config, path string) {
	prefix := "[WARNING]"
	if cfg.Accessible() {
		prefix = "WARNING:"
	}
	fmt.Fprintf(cfg.promptOut, "%s decoding %q requires loading the whole decompressed archive, memory use grows with its size\n", prefix, path)
}

// userWantsToContinue consults the policy for the given action, prompting
// interactively only for PolicyAsk. The policy is consulted exactly once per
// call; answers are never cached. A declined question is not an error.
// Callers must hold outputMu so the prompt stays adjacent to its warning.
func userWantsToContinue(cfg *Config, path string, policy QuestionPolicy, action QuestionAction) (bool, *Error) {
	switch policy {
	case PolicyAlwaysYes:
		return true, nil
	case PolicyAlwaysNo:
		return false, nil
	}

	verb := "continue"
	if action == ActionDecompression {
		verb = "continue decompressing"
	}

	// a question without a terminal to answer it on defaults to no
	if f, ok := cfg.promptIn.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false, nil
	}

	if cfg.Accessible() {
		fmt.Fprintf(cfg.promptOut, "Do you want to %s %q? yes or no: ", verb, path)
	} else {
		fmt.Fprintf(cfg.promptOut, "Do you want to %s %q? [Y/n] ", verb, path)
	}

	line, err := bufio.NewReader(cfg.promptIn).ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return false, fromIOError(err)
		}
		if line == "" {
			// closed input gives no answer, treat it as a refusal
			return false, nil
		}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
