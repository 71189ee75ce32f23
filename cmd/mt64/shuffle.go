package main

import (
	"fmt"
	"strconv"

	"github.com/lox/mersenne/internal/shuffle"
	"github.com/lox/mersenne/mt64"
)

// ShuffleCmd shuffles its arguments, or the numbers 1..N
type ShuffleCmd struct {
	Seed  uint64   `short:"s" default:"5489" help:"Seed value"`
	N     int      `short:"n" default:"52" help:"Shuffle 1..N when no items are given"`
	Deal  int      `short:"d" help:"Only deal this many items (default all)"`
	Items []string `arg:"" optional:"" help:"Items to shuffle"`
}

func (c *ShuffleCmd) Run(globals *Globals) error {
	items := c.Items
	if len(items) == 0 {
		if c.N < 0 {
			return fmt.Errorf("n must not be negative")
		}
		items = make([]string, c.N)
		for i := range items {
			items[i] = strconv.Itoa(i + 1)
		}
	}

	deck, err := shuffle.NewDeck(items, mt64.NewSeeded(c.Seed))
	if err != nil {
		return err
	}

	count := deck.Remaining()
	if c.Deal > 0 {
		count = min(c.Deal, count)
	}
	for _, item := range deck.Deal(count) {
		fmt.Fprintln(globals.Stdout, item)
	}
	return nil
}
