// Package batch ingests fixed-layout card files.
//
// A file has one header line, any number of detail lines and an optional
// trailer line. Parsing is all or nothing: a malformed header, detail or
// trailer aborts the file before any card is tokenized. Once parsed, every
// detail goes through the tokenization use case in file order and failures
// of individual cards are reported per line without stopping the rest.
//
// Layout (byte columns, zero based, half open):
//
//	header   name [0,29)  date [29,37) yyyyMMdd  lot [37,45)  quantity [45,51)
//	detail   'C' [0,1)    sequence [1,7)         pan [7,26)
//	trailer  "LOTE" ...   lot [0,8)              count [8,14)
package batch
