package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gruppe-adler/regionsculpt/internal/preview"
	"github.com/gruppe-adler/regionsculpt/internal/sculpt"
)

type command struct {
	name        string
	description string
	usage       string
	run         func(*flag.FlagSet)
}

var subCommands []command

func init() {
	subCommands = []command{
		{"sculpt", "Build sculpt maps from terrain scans or DEMs.", "[-out DIR] [-prefix PREFIX] [-format scan|esri] FILE...", sculpt.Run},
		{"pyramid", "Build a pyramid test sculpt map.", "[-out FILE]", sculpt.RunPyramid},
		{"preview", "Build enlarged previews of a sculpt map.", "-in SCULPTMAP.png [-out DIR]", preview.Run},
		{"help", "Print this message.", "", func(s *flag.FlagSet) { printUsage() }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for i := 0; i < len(subCommands); i++ {
		name := subCommands[i].name

		fmt.Printf("%12s    %s\n", name, subCommands[i].description)
	}

	fmt.Print("\nEXAMPLES: \n")
	for _, c := range subCommands {
		if c.usage != "" {
			fmt.Printf("    %s %s %s\n", os.Args[0], c.name, c.usage)
		}
	}
	fmt.Printf("    %s sculpt -out ./sculpts -mounts scans/*.eml\n", os.Args[0])

	fmt.Printf("\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {

	if len(os.Args) < 2 {
		fmt.Printf("\nERROR: No subcommand was provided.\n\n")
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	for i := 0; i < len(subCommands); i++ {
		if subCommands[i].name == cmd {
			set := flag.NewFlagSet(cmd, flag.ExitOnError)
			subCommands[i].run(set)
			return
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
	os.Exit(1)
}
