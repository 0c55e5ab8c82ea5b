// Package textio reads knapsack instances and writes solutions.
//
// Plain text format (stdin of the knapsack command):
//
//	<precision>
//	<capacity>
//	<weight> <cost>
//	<weight> <cost>
//	...
//
// Tokens may be separated by any whitespace; pairs run to end of input and
// get 1-based indices in order. Output is "<totalWeight> <totalCost>" and
// then one selected index per line.
//
// Batch format (YAML, see ReadBatch):
//
//	instances:
//	  - name: small
//	    precision: 0.5
//	    capacity: 50
//	    items: [[10, 60], [20, 100], [30, 120]]
//
// Only the shape is checked here; value validation belongs to knapsack.Solve.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvknap/knapsack"
)

// ErrMalformedInput indicates input that cannot be parsed into an instance.
var ErrMalformedInput = errors.New("textio: malformed input")

// Instance is one parsed problem.
type Instance struct {
	Name      string
	Precision float64
	Capacity  int64
	Items     []knapsack.Item
}

// ReadInstance parses the plain text format from r.
func ReadInstance(r io.Reader) (Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		inst  Instance
		pairs [][2]int64
		pair  [2]int64
		tok   int // tokens consumed after the header
		v     int64
		err   error
	)
	if !sc.Scan() {
		return Instance{}, scanErr(sc, "missing precision")
	}
	if inst.Precision, err = strconv.ParseFloat(sc.Text(), 64); err != nil {
		return Instance{}, fmt.Errorf("%w: precision %q", ErrMalformedInput, sc.Text())
	}
	if !sc.Scan() {
		return Instance{}, scanErr(sc, "missing capacity")
	}
	if inst.Capacity, err = strconv.ParseInt(sc.Text(), 10, 64); err != nil {
		return Instance{}, fmt.Errorf("%w: capacity %q", ErrMalformedInput, sc.Text())
	}

	for sc.Scan() {
		if v, err = strconv.ParseInt(sc.Text(), 10, 64); err != nil {
			return Instance{}, fmt.Errorf("%w: item %d value %q", ErrMalformedInput, tok/2+1, sc.Text())
		}
		pair[tok%2] = v
		if tok%2 == 1 {
			pairs = append(pairs, pair)
		}
		tok++
	}
	if err = sc.Err(); err != nil {
		return Instance{}, fmt.Errorf("textio: read: %w", err)
	}
	if tok%2 != 0 {
		return Instance{}, fmt.Errorf("%w: item %d has a weight but no cost", ErrMalformedInput, tok/2+1)
	}
	inst.Items = knapsack.NewCatalog(pairs)

	return inst, nil
}

// scanErr reports a read failure, or ErrMalformedInput when input just ended.
func scanErr(sc *bufio.Scanner, what string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("textio: read: %w", err)
	}

	return fmt.Errorf("%w: %s", ErrMalformedInput, what)
}

// WriteSolution writes sol in the plain text output format.
func WriteSolution(w io.Writer, sol knapsack.Solution) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", sol.TotalWeight, sol.TotalCost); err != nil {
		return err
	}
	for _, idx := range sol.Indices {
		if _, err := fmt.Fprintf(bw, "%d\n", idx); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// batchFile mirrors the YAML batch document.
type batchFile struct {
	Instances []batchInstance `yaml:"instances"`
}

type batchInstance struct {
	Name      string    `yaml:"name"`
	Precision *float64  `yaml:"precision"`
	Capacity  int64     `yaml:"capacity"`
	Items     [][]int64 `yaml:"items"`
}

// ReadBatch decodes a YAML batch document. Instances without a precision get
// defaultPrecision; unnamed instances are named by position ("#1", "#2", …).
// Unknown keys are rejected.
func ReadBatch(r io.Reader, defaultPrecision float64) ([]Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc batchFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty batch document", ErrMalformedInput)
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	out := make([]Instance, 0, len(doc.Instances))
	for i, bi := range doc.Instances {
		inst := Instance{Name: bi.Name, Precision: defaultPrecision, Capacity: bi.Capacity}
		if inst.Name == "" {
			inst.Name = "#" + strconv.Itoa(i+1)
		}
		if bi.Precision != nil {
			inst.Precision = *bi.Precision
		}
		pairs := make([][2]int64, len(bi.Items))
		for j, it := range bi.Items {
			if len(it) != 2 {
				return nil, fmt.Errorf("%w: instance %s item %d needs [weight, cost]", ErrMalformedInput, inst.Name, j+1)
			}
			pairs[j] = [2]int64{it[0], it[1]}
		}
		inst.Items = knapsack.NewCatalog(pairs)
		out = append(out, inst)
	}

	return out, nil
}
