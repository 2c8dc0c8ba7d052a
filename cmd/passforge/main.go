package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

const usage = `usage: passforge generate [--length N] [--numbers] [--symbols] [--capitalized] [--type random|pin|memorable]`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q\n%s", args[0], usage)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	length := fs.Int("length", service.DefaultLength, "password length (0-255)")
	numbers := fs.Bool("numbers", false, "include digits")
	symbols := fs.Bool("symbols", false, "include symbols")
	capitalized := fs.Bool("capitalized", false, "include uppercase letters")
	kind := fs.String("type", "", "password type: random, pin or memorable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Lowercase is left nil so the service applies its implicit-on default;
	// kind presets override the class flags entirely.
	req := model.GenerateRequest{
		Length:    length,
		Numbers:   numbers,
		Symbols:   symbols,
		Uppercase: capitalized,
		Kind:      *kind,
	}

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(req)
	if err != nil {
		return err
	}

	fmt.Println(resp.Password)
	fmt.Fprintf(os.Stderr, "strength: %.0f%%\n", resp.Strength)
	return nil
}
