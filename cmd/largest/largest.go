package main

import (
	"bufio"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/willabides/largest/internal/largest"
)

type cliOptions struct {
	Type     string   `short:"t" default:"int" enum:"int,uint,float,string,rune" env:"LARGEST_TYPE" help:"Element type: ${enum}."`
	Format   string   `short:"f" default:"text" enum:"text,json,table" env:"LARGEST_FORMAT" help:"Output format: ${enum}."`
	Input    string   `short:"i" placeholder:"FILE" help:"Read whitespace-separated values from FILE (\"-\" for stdin)."`
	LogLevel string   `default:"warn" enum:"debug,info,warn,error" env:"LARGEST_LOG_LEVEL" help:"Log level: ${enum}."`
	Values   []string `arg:"" optional:"" help:"Values to compare. When any value is negative, put every value after \"--\"."`
}

// result is what gets reported for a run.
type result struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Index int    `json:"index"`
	Value any    `json:"value"`
}

func main() {
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run writes the result to w and logs to stderr. --help prints usage to w
// and returns nil.
func run(w, stderr io.Writer, args []string) error {
	var cli cliOptions
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("largest"),
		kong.Description("Print the largest of the given values."),
		kong.Writers(w, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return err
	}
	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(level)

	raw := cli.Values
	if cli.Input != "" {
		fields, err := readFields(cli.Input)
		if err != nil {
			return err
		}
		log.Debugf("read %d values from %s", len(fields), cli.Input)
		raw = append(raw, fields...)
	}

	var res *result
	switch cli.Type {
	case "int":
		res, err = find(cli.Type, raw, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		}, identity[int64])
	case "uint":
		res, err = find(cli.Type, raw, func(s string) (uint64, error) {
			return strconv.ParseUint(s, 10, 64)
		}, identity[uint64])
	case "float":
		res, err = find(cli.Type, raw, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, identity[float64])
	case "string":
		res, err = find(cli.Type, raw, func(s string) (string, error) {
			return s, nil
		}, identity[string])
	case "rune":
		res, err = find(cli.Type, raw, parseRune, func(r rune) any {
			return string(r)
		})
	default:
		err = fmt.Errorf("unknown type %q", cli.Type)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"type":  res.Type,
		"count": res.Count,
		"index": res.Index,
	}).Debug("found largest value")

	return printResult(w, cli.Format, res)
}

// find parses every raw value as T and picks the largest one.
func find[T cmp.Ordered](typ string, raw []string, parse func(string) (T, error), show func(T) any) (*result, error) {
	values := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, fmt.Errorf("invalid %s value %q: %w", typ, s, err)
		}
		values = append(values, v)
	}
	idx, err := largest.Index(values)
	if err != nil {
		return nil, fmt.Errorf("find largest %s value: %w", typ, err)
	}
	return &result{
		Type:  typ,
		Count: len(values),
		Index: idx,
		Value: show(values[idx]),
	}, nil
}

func identity[T any](v T) any { return v }

func parseRune(s string) (rune, error) {
	if !utf8.ValidString(s) {
		return 0, errors.New("not valid UTF-8")
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func readFields(name string) (_ []string, errOut error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() {
			errOut = errors.Join(errOut, f.Close())
		}()
		r = f
	}
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return fields, nil
}

func printResult(w io.Writer, format string, res *result) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(res)
	case "table":
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"Type", "Count", "Index", "Value"})
		tw.AppendRow(table.Row{res.Type, res.Count, res.Index, res.Value})
		tw.Render()
		return nil
	default:
		_, err := fmt.Fprintln(w, res.Value)
		return err
	}
}
