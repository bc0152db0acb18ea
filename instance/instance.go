// Package instance reads knapsack instances from text and writes solutions
// in the formats the CLI offers.
//
// Input format:
//
//	n capacity
//	v_0 w_0
//	v_1 w_1
//	...
//	v_{n-1} w_{n-1}
//
// Fields are separated by any whitespace and blank lines are skipped.
// Item i receives Index i. Fewer than n item lines, extra non-blank lines
// and non-integer fields are reported as ErrMalformed with the line number.
//
// Output formats: FormatText ("value flag" then the taken flags on one
// line, flag = 1 when the value is proven optimal), FormatJSON, FormatYAML.
package instance

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/core"
)

// Sentinel errors for instance I/O.
var (
	// ErrMalformed indicates input that does not follow the instance format.
	// Returned errors wrap it with the offending line number.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrUnknownFormat is returned for an output format outside the declared set.
	ErrUnknownFormat = errors.New("instance: unknown output format")
)

// Instance is one parsed problem.
type Instance struct {
	Items    []core.Item
	Capacity int64
}

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported Format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates name as a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Parse reads one instance from r and validates it with core.Validate.
//
// Errors: ErrMalformed (wrapped with line detail), core validation
// sentinels, and read errors from r.
func Parse(r io.Reader) (Instance, error) {
	var (
		sc      = bufio.NewScanner(r)
		line    int
		header  bool
		n       int64
		inst    Instance
		fields  []string
		numbers [2]int64
		err     error
	)
	for sc.Scan() {
		line++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if header && int64(len(inst.Items)) == n {
			return Instance{}, fmt.Errorf("%w: line %d: unexpected data after %d items", ErrMalformed, line, n)
		}
		if numbers, err = pair(fields, line); err != nil {
			return Instance{}, err
		}
		if !header {
			header = true
			n, inst.Capacity = numbers[0], numbers[1]
			if n < 0 {
				return Instance{}, fmt.Errorf("%w: line %d: negative item count %d", ErrMalformed, line, n)
			}
			inst.Items = make([]core.Item, 0, min(n, 1<<16))
			continue
		}
		inst.Items = append(inst.Items, core.Item{
			Index:  len(inst.Items),
			Value:  numbers[0],
			Weight: numbers[1],
		})
	}
	if err = sc.Err(); err != nil {
		return Instance{}, fmt.Errorf("instance: read: %w", err)
	}
	if !header {
		return Instance{}, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if int64(len(inst.Items)) != n {
		return Instance{}, fmt.Errorf("%w: line %d: expected %d items, got %d", ErrMalformed, line, n, len(inst.Items))
	}
	if err = core.Validate(inst.Items, inst.Capacity); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// pair parses exactly two integer fields.
func pair(fields []string, line int) ([2]int64, error) {
	var out [2]int64
	if len(fields) != 2 {
		return out, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformed, line, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, line, f)
		}
		out[i] = v
	}

	return out, nil
}

// Result is the encoded shape of a solution for FormatJSON and FormatYAML.
type Result struct {
	Value   int64 `json:"value" yaml:"value"`
	Optimal bool  `json:"optimal" yaml:"optimal"`
	Taken   []int `json:"taken" yaml:"taken,flow"`
}

// Write encodes sol to w in format f.
//
// Errors: ErrUnknownFormat, and write/encode errors from w.
func Write(w io.Writer, sol core.Solution, f Format) error {
	res := Result{Value: sol.Value, Optimal: sol.Optimal, Taken: sol.Taken}
	if res.Taken == nil {
		res.Taken = []int{}
	}

	switch f {
	case FormatText:
		return writeText(w, res)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}

		return enc.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func writeText(w io.Writer, res Result) error {
	flag := 0
	if res.Optimal {
		flag = 1
	}
	var b strings.Builder
	b.WriteString(strconv.FormatInt(res.Value, 10))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(flag))
	b.WriteByte('\n')
	for i, t := range res.Taken {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(t))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}
