package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/standardbeagle/navmatch/pkg/patternmatch"

	"github.com/urfave/cli/v2"
)

type spanOutput struct {
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

func spansCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: navmatch spans <identifier>")
	}
	identifier := c.Args().First()

	spans := patternmatch.CharacterSpans(identifier)
	if c.Bool("words") {
		spans = patternmatch.WordSpans(identifier)
	}

	out := make([]spanOutput, len(spans))
	for i, s := range spans {
		out[i] = spanOutput{Start: s.Start, Length: s.Length, Text: s.In(identifier)}
	}

	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(out)
	}
	for _, s := range out {
		fmt.Fprintf(c.App.Writer, "%d\t%d\t%s\n", s.Start, s.Length, s.Text)
	}
	return nil
}
