package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frond-ui/frond/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌─┐┌┐┌┌┬┐
  ├─ ├┬┘│ ││││ ││
  └  ┴└─└─┘┘└┘─┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "frond",
		Short: "Build browser UIs in Go without a virtual DOM",
		Long: `Frond is a micro-library for interactive browser UIs in Go.

It wires reactive cells directly to live DOM nodes and releases
their subscriptions automatically when nodes leave the tree.

  • Reactive cells with change notification
  • Automatic teardown on node removal
  • Element-construction DSL and hash router
  • Hot reload development server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		devCmd(),
		buildCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var fe *errors.Error
		if errors.As(err, &fe) {
			fmt.Fprint(os.Stderr, fe.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the frond ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
