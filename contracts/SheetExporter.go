package contracts

import "io"

type SheetExporter interface {
	Export(schema Schema, resolved SheetData, w io.Writer) error
}
