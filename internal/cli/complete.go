package cli

import (
	"flag"
	"sort"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/idilsaglam/moneywise/internal/route"
)

// Completion describes the command line for shell completion: the root
// flags and one sub command per entry of cmds, each with its own flags.
func Completion(root *flag.FlagSet, cmds []subcommands.Command, routes map[string][]string) *complete.Command {
	c := &complete.Command{
		Flags: flagPredictors(root, nil),
		Sub:   make(map[string]*complete.Command, len(cmds)+3),
	}
	var names []string
	for _, cmd := range cmds {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs, routes)}
		if cmd.Name() == "expense" {
			sub.Args = predict.Set{"add", "ls", "clear", "export"}
		}
		c.Sub[cmd.Name()] = sub
		names = append(names, cmd.Name())
	}
	sort.Strings(names)
	c.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	c.Sub["flags"] = &complete.Command{Args: predict.Set(names)}
	c.Sub["commands"] = &complete.Command{}
	return c
}

func flagPredictors(fs *flag.FlagSet, routes map[string][]string) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBool(f):
			m[f.Name] = predict.Nothing
		case f.Name == "o":
			m[f.Name] = predict.Files("*.pdf")
		case f.Name == "config":
			m[f.Name] = predict.Files("*.yaml")
		case f.Name == "theme":
			m[f.Name] = predict.Set{"light", "dark"}
		case f.Name == "log-level":
			m[f.Name] = predict.Set{"debug", "info", "warn", "error"}
		case f.Name == "route" && routes != nil:
			if t, err := route.NewTable(routes); err == nil {
				m[f.Name] = predict.Set(t.IDs())
			}
		default:
			m[f.Name] = predict.Something
		}
	})
	return m
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
