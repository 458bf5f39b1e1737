package main

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"

	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

const (
	exitFailure   = 1
	exitUserError = 2
)

func main() {
	root := newRootCmd()
	if isTerminal(os.Stdout) {
		cc.Init(&cc.Config{
			RootCmd:       root,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if netlenserrors.IsUserError(err) {
			os.Exit(exitUserError)
		}
		os.Exit(exitFailure)
	}
}
