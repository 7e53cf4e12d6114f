// Command fmtmap prints how engine pixel formats translate to platform
// formats.
//
// Usage:
//
//	fmtmap [--apple] [--family NAME] [--only-failures]
//	fmtmap translate [--apple] NAME
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/hostbridge/format"
)

var (
	appleFlag = &cli.BoolFlag{
		Name:  "apple",
		Usage: "translate for an Apple family GPU",
	}
	familyFlag = &cli.StringFlag{
		Name:  "family",
		Usage: "only list formats of one family (e.g. ASTC, DXTC, Packed32)",
	}
	failuresFlag = &cli.BoolFlag{
		Name:  "only-failures",
		Usage: "only list formats that cannot be translated",
	}
)

var translateCommand = &cli.Command{
	Name:      "translate",
	Usage:     "Translates one format",
	ArgsUsage: "NAME",
	Flags:     []cli.Flag{appleFlag},
	Action:    translateAction,
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "fmtmap",
		Usage:    "engine to platform pixel format table",
		Flags:    []cli.Flag{appleFlag, familyFlag, failuresFlag},
		Action:   tableAction,
		Commands: []*cli.Command{translateCommand},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tableAction(ctx *cli.Context) error {
	filter := rowFilter{onlyFailures: ctx.Bool(failuresFlag.Name)}
	if name := ctx.String(familyFlag.Name); name != "" {
		fam, err := format.ParseFamily(name)
		if err != nil {
			return err
		}
		filter.family = fam
	}
	apple := ctx.Bool(appleFlag.Name)
	rows := filter.apply(format.Table(apple))
	writeTable(ctx.App.Writer, rows)
	writeSummary(ctx.App.Writer, rows, apple)
	return nil
}

func translateAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected one format name, got %d arguments", ctx.NArg())
	}
	f, err := format.Parse(ctx.Args().First())
	if err != nil {
		return err
	}
	t, err := format.Translate(f, ctx.Bool(appleFlag.Name))
	writeTranslation(ctx.App.Writer, format.Row{Translation: t, Err: err})
	return nil
}
