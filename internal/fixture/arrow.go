package fixture

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v13/arrow"
	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/ipc"
	"github.com/apache/arrow/go/v13/arrow/memory"
	logger "github.com/moontrade/log"
)

var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "kind", Type: arrow.BinaryTypes.String},
	{Name: "seed", Type: arrow.BinaryTypes.String},
	{Name: "step", Type: arrow.PrimitiveTypes.Int64},
	{Name: "raw", Type: arrow.PrimitiveTypes.Uint32},
	{Name: "value", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// Encode writes rows as a single record batch Arrow IPC file.
func Encode(w io.Writer, mem memory.Allocator, rows []Row) (err error) {
	b := array.NewRecordBuilder(mem, Schema)
	defer b.Release()

	var (
		kinds  = b.Field(0).(*array.StringBuilder)
		seeds  = b.Field(1).(*array.StringBuilder)
		steps  = b.Field(2).(*array.Int64Builder)
		raws   = b.Field(3).(*array.Uint32Builder)
		values = b.Field(4).(*array.Float64Builder)
	)
	for _, row := range rows {
		kinds.Append(string(row.Kind))
		seeds.Append(row.Seed)
		steps.Append(row.Step)
		raws.Append(row.Raw)
		values.Append(row.Value)
	}
	rec := b.NewRecord()
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(Schema), ipc.WithAllocator(mem))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fw.Write(rec)
}

// Decode reads every record batch of an Arrow IPC file produced by Encode.
func Decode(r ipc.ReadAtSeeker, mem memory.Allocator) ([]Row, error) {
	fr, err := ipc.NewFileReader(r, ipc.WithAllocator(mem), ipc.WithSchema(Schema))
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	var rows []Row
	for i := 0; i < fr.NumRecords(); i++ {
		rec, err := fr.Record(i)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = appendRecord(rows, rec)
	}
	logger.Debug("fixture rows decoded", len(rows))
	return rows, nil
}

func appendRecord(rows []Row, rec arrow.Record) []Row {
	var (
		kinds  = rec.Column(0).(*array.String)
		seeds  = rec.Column(1).(*array.String)
		steps  = rec.Column(2).(*array.Int64)
		raws   = rec.Column(3).(*array.Uint32)
		values = rec.Column(4).(*array.Float64)
	)
	for j := 0; j < int(rec.NumRows()); j++ {
		rows = append(rows, Row{
			Kind:  Kind(kinds.Value(j)),
			Seed:  seeds.Value(j),
			Step:  steps.Value(j),
			Raw:   raws.Value(j),
			Value: values.Value(j),
		})
	}
	return rows
}
