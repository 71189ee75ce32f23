package main

import (
	"errors"
	"fmt"

	"github.com/lox/mersenne/mt64"
)

// referenceCheck compares one generator output with its published value
type referenceCheck struct {
	Name string
	Want uint64
	Got  uint64
	Err  error
}

func (c referenceCheck) Passed() bool {
	return c.Err == nil && c.Got == c.Want
}

// nth returns the 1-based nth output of g.
func nth(g *mt64.Generator, index int) (uint64, error) {
	var v uint64
	var err error
	for range index {
		if v, err = g.Next(); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func referenceChecks() []referenceCheck {
	key := []uint64{0x12345, 0x23456, 0x34567, 0x45678}
	checks := []struct {
		name  string
		want  uint64
		index int
		seed  func(*mt64.Generator)
	}{
		{"seed 5489, output 1", 14514284786278117030, 1, func(g *mt64.Generator) { g.Seed(mt64.DefaultSeed) }},
		{"seed 5489, output 2", 4620546740167642908, 2, func(g *mt64.Generator) { g.Seed(mt64.DefaultSeed) }},
		{"seed 5489, output 10000", 9981545732273789042, 10000, func(g *mt64.Generator) { g.Seed(mt64.DefaultSeed) }},
		{"array key, output 1", 7266447313870364031, 1, func(g *mt64.Generator) { g.SeedSlice(key) }},
		{"array key, output 2", 4946485549665804864, 2, func(g *mt64.Generator) { g.SeedSlice(key) }},
	}

	results := make([]referenceCheck, 0, len(checks)+1)
	for _, c := range checks {
		g := mt64.New()
		c.seed(g)
		got, err := nth(g, c.index)
		results = append(results, referenceCheck{Name: c.name, Want: c.want, Got: got, Err: err})
	}

	_, err := mt64.New().Next()
	guard := referenceCheck{Name: "unseeded generator refuses to draw"}
	if !errors.Is(err, mt64.ErrNotSeeded) {
		guard.Err = fmt.Errorf("expected ErrNotSeeded, got %v", err)
	}
	return append(results, guard)
}

// VerifyCmd runs the reference checks
type VerifyCmd struct{}

func (c *VerifyCmd) Run(globals *Globals) error {
	checks := referenceChecks()

	fmt.Fprintln(globals.Stdout, HeaderStyle.Render(" MT19937-64 reference checks "))
	failed := 0
	for _, check := range checks {
		status := SuccessStyle.Render("PASS")
		detail := ""
		switch {
		case check.Err != nil:
			status = ErrorStyle.Render("FAIL")
			detail = check.Err.Error()
			failed++
		case !check.Passed():
			status = ErrorStyle.Render("FAIL")
			detail = fmt.Sprintf("got %d, want %d", check.Got, check.Want)
			failed++
		case check.Want != 0:
			detail = DimStyle.Render(fmt.Sprintf("%d", check.Got))
		}
		fmt.Fprintf(globals.Stdout, "%s  %-36s %s\n", status, check.Name, detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reference checks failed", failed, len(checks))
	}
	return nil
}
