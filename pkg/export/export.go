package export

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"sinplot/pkg/errs"
	"sinplot/pkg/lib"
	"sinplot/pkg/sampler"
)

// Dense lays the set out as an n x 2 matrix of (input, output) rows.
func Dense(set sampler.SampleSet) *mat.Dense {
	m := mat.NewDense(len(set), 2, nil)
	m.SetCol(0, set.Inputs())
	m.SetCol(1, set.Outputs())
	return m
}

// SaveCSV writes the samples with an input,output header. "-" writes to stdout.
func SaveCSV(path string, set sampler.SampleSet) error {
	if len(set) == 0 {
		return errs.Config("samples", "nothing to export")
	}

	sink, err := lib.OpenSink(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", errs.ErrIO, path, err)
	}
	defer sink.Abort()

	if err := writeDense(csv.NewWriter(sink), Dense(set)); err != nil {
		return fmt.Errorf("%w: write %s: %w", errs.ErrIO, path, err)
	}

	if err := sink.Commit(); err != nil {
		return fmt.Errorf("%w: commit %s: %w", errs.ErrIO, path, err)
	}

	return nil
}

func writeDense(writer *csv.Writer, m *mat.Dense) error {
	if err := writer.Write([]string{"input", "output"}); err != nil {
		return err
	}

	rows, cols := m.Dims()

	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
