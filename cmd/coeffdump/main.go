// Command coeffdump is a development aid that loads one coefficient set
// and prints its empty-count dispatch ranges and a few sample
// coefficients. It is not part of the evaluator core: it exists purely
// to let a developer eyeball a .cof file's bucket layout.
package main

import (
	"fmt"
	"os"

	"github.com/BelikovArtem/othello-eval/coeff"
	"github.com/BelikovArtem/othello-eval/types"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "coeffdump"
	app.Usage = "inspect a pattern-evaluator coefficient set"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "dir", Value: ".", Usage: "base directory containing coefficients/"},
		cli.StringFlag{Name: "family", Value: "J", Usage: "evaluator family identifier"},
		cli.StringFlag{Name: "set", Value: "1", Usage: "coefficient set identifier"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	familyFlag, setFlag := c.String("family"), c.String("set")
	if familyFlag == "" || setFlag == "" {
		return fmt.Errorf("--family and --set must each be a single non-empty character")
	}
	family := familyFlag[0]
	set := setFlag[0]

	store, err := coeff.Load(family, set, c.String("dir"))
	if err != nil {
		return err
	}

	fmt.Printf("family=%c set=%c\n", family, set)
	prevLabel := -1
	for e := 0; e <= 59; e++ {
		label := store.SetIndex(e)
		if label != prevLabel {
			fmt.Printf("empty_count %2d..", e)
			prevLabel = label
		}
		if e == 59 || store.SetIndex(e+1) != label {
			fmt.Printf("%2d -> set #%d\n", e, label)
		}
	}

	sample := store.PCoeffs(20)
	fmt.Println("sample coefficients at empty_count=20:")
	for _, m := range []types.Map{types.MapR1, types.MapM1, types.MapParity} {
		fmt.Printf("  %v[0] = %d\n", m, sample[types.Offset(m)])
	}

	return nil
}
