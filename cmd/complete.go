package cmd

import (
	"context"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/date"
	"github.com/neromancy/hasilbumi/docs"
	"github.com/neromancy/hasilbumi/store"
)

// predictItems completes item names from the configured store.
// Errors are ignored: completion must stay silent.
var predictItems = complete.PredictFunc(func(prefix string) []string {
	ctx := context.Background()
	s, err := openStore(ctx)
	if err != nil {
		return nil
	}
	defer s.Close()
	sess, err := hasilbumi.Open(ctx, s)
	if err != nil {
		return nil
	}
	return hasilbumi.UniqueItems(sess.Transactions(), sess.Items())
})

var predictTopics = complete.PredictFunc(func(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
})

func periods() predict.Set {
	var s predict.Set
	for _, p := range date.Periods {
		s = append(s, p.String())
	}
	return s
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	record := map[string]complete.Predictor{
		"d": predict.Nothing,
		"i": predictItems,
		"q": predict.Nothing,
		"p": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":       {Flags: record},
			"sell":      {Flags: record},
			"tx":        {Flags: map[string]complete.Predictor{"head": predict.Nothing, "tail": predict.Nothing}},
			"clear":     {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"sample":    {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"import":    {Args: predict.Files("*.json")},
			"check":     {},
			"items":     {},
			"add-item":  {},
			"rm-item":   {Args: predictItems},
			"dashboard": {},
			"report": {Flags: map[string]complete.Predictor{
				"p":     periods(),
				"d":     predict.Nothing,
				"i":     predictItems,
				"html":  predict.Files("*.html"),
				"items": predict.Nothing,
			}},
			"topic": {Args: predictTopics},
			"help":  {},
		},
		Flags: map[string]complete.Predictor{
			"store":    predict.Set{store.KindFile, store.KindSQLite, store.KindRedis},
			"path":     predict.Files("*"),
			"currency": predict.Set{"IDR", "USD", "EUR"},
			"v":        predict.Nothing,
		},
	}
}
