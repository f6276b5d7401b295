package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.session.Authenticated {
		return fmt.Sprintf("(%s) ", a.session.User.Name)
	}
	return ""
}

// Root greets the operator and runs the REPL on stdin until exit.
func (a *App) Root(ctx context.Context) {
	if a.session.Authenticated {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.session.User.Name))
	}
	printlnFn("userdeck CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
