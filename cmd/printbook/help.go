package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printbook [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Assemble the print-ready HTML (default)")
	fmt.Fprintln(w, "  verify     Check an assembled document")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  profiles   List print profiles")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'printbook help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printbook [build] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed the stylesheet and cover image into the source HTML and append")
	fmt.Fprintln(w, "print CSS. Without flags, reads complete_medical_textbook.html,")
	fmt.Fprintln(w, "medical-textbook-styles.css and BTInterpretation.png from the current")
	fmt.Fprintln(w, "directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --html <path>         Source HTML file")
	fmt.Fprintln(w, "      --css <path>          Stylesheet to embed")
	fmt.Fprintln(w, "      --cover <path>        Cover image")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: profile output name)")
	fmt.Fprintln(w, "      --pdf <path>          Also render a PDF with headless Chrome")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print:")
	fmt.Fprintln(w, "      --profile <name>      standard (default) or enhanced")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/ and templates/")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF rendering timeout (env PRINTBOOK_TIMEOUT)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --author <s>          Document author")
	fmt.Fprintln(w, "      --lang <s>            Document language")
	fmt.Fprintln(w, "      --cover-alt <s>       Cover image alt text")
	fmt.Fprintln(w, "      --legacy-marker <s>   Comment opening the web cover block")
	fmt.Fprintln(w, "      --keep-legacy-cover   Do not remove the web cover block")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show diagnostics on stderr")
	fmt.Fprintln(w, "      --log-format <fmt>    Diagnostics format: text or json")
}

// printVerifyUsage prints usage for the verify command.
func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printbook verify [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that an assembled document has exactly one embedded cover, no")
	fmt.Fprintln(w, "leftover web cover, and print rules. File defaults to the profile output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --cover <path>        Original cover to compare byte-for-byte")
	fmt.Fprintln(w, "      --profile <name>      Profile whose default output is checked")
	fmt.Fprintln(w, "      --legacy-marker <s>   Comment opening the web cover block")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show problems")
}

// printProfilesUsage prints usage for the profiles command.
func printProfilesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printbook profiles [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List print profiles with their output names. Styles under")
	fmt.Fprintln(w, "<asset-path>/styles/ are listed as custom profiles.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "verify":
		printVerifyUsage(env.Stdout)
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: printbook config [build flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the effective configuration as YAML, usable as a config file.")
	case "profiles":
		printProfilesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: printbook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: printbook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
