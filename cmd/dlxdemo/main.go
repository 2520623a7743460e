// Command dlxdemo reads a sparse exact-cover instance from stdin and
// prints every solution Algorithm X finds. Input is line-oriented: the
// first line is the column count, and every line after it names one row
// as a label followed by the column indices it covers, e.g.:
//
//	3
//	A 0
//	B 1
//	C 2
//	D 0 2
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kpitt/dlx"
	"github.com/mattn/go-isatty"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter the column count, then one row per line as:")
		fmt.Println("  <label> <col> <col> ...")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	solver, err := readProblem(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("✗ %v", err))
		os.Exit(1)
	}

	solutions, err := solver.FindAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("✗ %v", err))
		os.Exit(1)
	}

	if len(solutions) == 0 {
		color.HiRed("No solutions.")
		return
	}

	color.HiWhite("%d solution(s):", len(solutions))
	for i, sol := range solutions {
		labels := make([]string, len(sol))
		for j, e := range sol {
			labels[j] = e.Data
		}
		fmt.Printf("%s %s\n", color.HiYellowString("%d.", i+1), color.HiGreenString(strings.Join(labels, " + ")))
	}
}

func readProblem(r *os.File) (*dlx.SimpleSolver[string], error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("missing column count")
	}
	columns, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("invalid column count: %w", err)
	}

	solver := dlx.New[string]().CreateSolver(dlx.SimpleConfig{Columns: columns})
	solver.ValidateConstraints()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		label := fields[0]
		cols := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			c, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %q: invalid column %q: %w", label, f, err)
			}
			cols = append(cols, c)
		}
		if err := solver.AddSparse(label, cols); err != nil {
			return nil, fmt.Errorf("row %q: %w", label, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return solver, nil
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
