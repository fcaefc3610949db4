package columnar

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// RecordBatch is a set of equally long columns.
type RecordBatch struct {
	nrows int64
	arrs  []ArrayImpl
}

// NewRecordBatch returns a RecordBatch of nrows rows. NewRecordBatch panics
// if any column does not have exactly nrows elements.
func NewRecordBatch(nrows int64, arrs []ArrayImpl) RecordBatch {
	for i, arr := range arrs {
		if int64(arr.Len()) != nrows {
			panic(fmt.Sprintf("column %d has %d rows, expected %d", i, arr.Len(), nrows))
		}
	}
	return RecordBatch{
		nrows: nrows,
		arrs:  arrs,
	}
}

func (rb RecordBatch) NumRows() int64 {
	return rb.nrows
}

func (rb RecordBatch) NumCols() int64 {
	return int64(len(rb.arrs))
}

func (rb RecordBatch) Column(i int64) ArrayImpl {
	return rb.arrs[i]
}

// ToArrow converts rb into an Arrow record whose fields are named by names.
// The caller must release the returned record.
func (rb RecordBatch) ToArrow(names []string) (arrow.Record, error) {
	if len(names) != len(rb.arrs) {
		return nil, fmt.Errorf("got %d field names for %d columns", len(names), len(rb.arrs))
	}

	fields := make([]arrow.Field, len(rb.arrs))
	cols := make([]arrow.Array, len(rb.arrs))
	for i, arr := range rb.arrs {
		cols[i] = ToArrow(arr)
		defer cols[i].Release()

		fields[i] = arrow.Field{Name: names[i], Type: cols[i].DataType(), Nullable: true}
	}

	return array.NewRecord(arrow.NewSchema(fields, nil), cols, rb.nrows), nil
}
