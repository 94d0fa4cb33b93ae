// Command tkrzw-build-util prints build configuration and version
// information of the library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/91social/tkrzw/sysinfo"
)

func usageAndExit() {
	prog := "tkrzw-build-util"
	fmt.Fprintf(os.Stderr, "%s: build utilities of Tkrzw\n", prog)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s config [-v]\n", prog)
	fmt.Fprintln(os.Stderr, "    : Prints configurations.")
	fmt.Fprintf(os.Stderr, "  %s version\n", prog)
	fmt.Fprintln(os.Stderr, "    : Prints the version information.")
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func runConfig(args []string) error {
	flags := pflag.NewFlagSet("config", pflag.ContinueOnError)
	versionOnly := flags.BoolP("version", "v", false, "print the version number only")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}
	if *versionOnly {
		fmt.Println(sysinfo.PackageVersion)
		return nil
	}
	fmt.Printf("PACKAGE_VERSION: %s\n", sysinfo.PackageVersion)
	fmt.Printf("LIBRARY_VERSION: %s\n", sysinfo.LibraryVersion)
	fmt.Printf("OS_NAME: %s\n", sysinfo.OSName())
	fmt.Printf("IS_BIG_ENDIAN: %t\n", sysinfo.IsBigEndian())
	fmt.Printf("PAGE_SIZE: %d\n", sysinfo.PageSize())
	return nil
}

func printVersion() {
	endian := "little"
	if sysinfo.IsBigEndian() {
		endian = "big"
	}
	fmt.Printf("Tkrzw %s (library %s) on %s (%s endian)\n",
		sysinfo.PackageVersion, sysinfo.LibraryVersion, sysinfo.OSName(), endian)
}

func main() {
	if len(os.Args) < 2 {
		usageAndExit()
	}
	var err error
	switch os.Args[1] {
	case "config":
		err = runConfig(os.Args[2:])
	case "version", "--version":
		printVersion()
	default:
		usageAndExit()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid command: %v\n\n", err)
		usageAndExit()
	}
}
