package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
	"github.com/ljstore/store/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. It returns immediately unless the
// shell is asking for completions, in which case it prints them and exits.
func completion() {
	categories := predict.Set(categoryNames())
	methods := predict.Set(methodNames())

	product := map[string]complete.Predictor{"id": predict.Something}

	lj := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-path": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"dashboard": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"report":    {},
			"products":  {Flags: map[string]complete.Predictor{"q": predict.Nothing}},
			"product-add": {Flags: map[string]complete.Predictor{
				"sku": predict.Nothing, "name": predict.Nothing, "category": categories,
				"cost": predict.Nothing, "price": predict.Nothing, "stock": predict.Nothing,
				"supplier": predict.Nothing,
			}},
			"product-edit": {Flags: map[string]complete.Predictor{
				"id": predict.Something, "name": predict.Nothing, "category": categories,
				"cost": predict.Nothing, "price": predict.Nothing, "stock": predict.Nothing,
				"supplier": predict.Nothing,
			}},
			"product-del": {Flags: product},
			"sell": {Flags: map[string]complete.Predictor{
				"id": predict.Something, "qty": predict.Nothing,
				"method": methods, "customer": predict.Something,
			}},
			"sales": {},
			"buy": {Flags: map[string]complete.Predictor{
				"id": predict.Something, "qty": predict.Nothing,
				"cost": predict.Nothing, "supplier": predict.Nothing,
			}},
			"purchases": {},
			"customers": {},
			"customer-add": {Flags: map[string]complete.Predictor{
				"name": predict.Nothing, "email": predict.Nothing, "phone": predict.Nothing,
			}},
			"customer-del": {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"import": {Flags: map[string]complete.Predictor{
				"file": predict.Files("*.json"), "supplier": predict.Nothing, "category": categories,
				"items": predict.Nothing, "sku": predict.Nothing, "name": predict.Nothing,
				"cost": predict.Nothing, "price": predict.Nothing,
			}},
			"topic": {Args: predict.Something},
		},
	}
	lj.Complete("lj")
}

func categoryNames() []string {
	var names []string
	for _, c := range store.Categories() {
		names = append(names, string(c))
	}
	return names
}

func methodNames() []string {
	var names []string
	for _, m := range store.PaymentMethods() {
		names = append(names, string(m))
	}
	return names
}
