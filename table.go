/*
 * table.go, part of gostoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gostoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package stoich

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Table is a periodic table: reference data for elements, indexed both by
// atomic symbol and by atomic number. A Table is not modified after it is built,
// so it can be shared freely between goroutines.
type Table struct {
	bySymbol map[string]*Element
	byNumber [MaxAtomicNumber + 1]*Element
	n        int
}

// Lookup returns the element with the given atomic symbol. Symbols are case
// sensitive, so "na" or "NA" are unknown elements.
func (T *Table) Lookup(symbol string) (*Element, error) {
	e, ok := T.bySymbol[symbol]
	if !ok {
		return nil, newError(ErrUnknownElement, "Table.Lookup", "no element with symbol %q", symbol)
	}
	return e, nil
}

// ByNumber returns the element with atomic number z.
func (T *Table) ByNumber(z int) (*Element, error) {
	if z < 1 || z > MaxAtomicNumber || T.byNumber[z] == nil {
		return nil, newError(ErrUnknownElement, "Table.ByNumber", "no element with atomic number %d", z)
	}
	return T.byNumber[z], nil
}

// Len returns the number of elements in the table.
func (T *Table) Len() int { return T.n }

// Elements returns the elements of the table, sorted by atomic number.
func (T *Table) Elements() []*Element {
	ret := make([]*Element, 0, T.n)
	for _, e := range T.byNumber {
		if e != nil {
			ret = append(ret, e)
		}
	}
	return ret
}

func (T *Table) add(e *Element, line int) error {
	if e.number < 1 || e.number > MaxAtomicNumber {
		return newError(ErrInvalidState, "Table.add", "line %d: atomic number %d out of range", line, e.number)
	}
	if _, ok := T.bySymbol[e.symbol]; ok {
		return newError(ErrInvalidState, "Table.add", "line %d: duplicated symbol %s", line, e.symbol)
	}
	if T.byNumber[e.number] != nil {
		return newError(ErrInvalidState, "Table.add", "line %d: duplicated atomic number %d", line, e.number)
	}
	T.bySymbol[e.symbol] = e
	T.byNumber[e.number] = e
	T.n++
	return nil
}

// ReadTable builds a Table from CSV records in the format
// atomicNumber,name,symbol,atomicMass
// one element per line. If the first record doesn't start with a number, it is taken
// as a header and ignored.
func ReadTable(r io.Reader) (*Table, error) {
	T := &Table{bySymbol: make(map[string]*Element)}
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	c.FieldsPerRecord = -1
	for line := 1; ; line++ {
		rec, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError(ErrInvalidState, "ReadTable", "line %d: %s", line, err.Error())
		}
		if len(rec) < 4 {
			return nil, newError(ErrInvalidState, "ReadTable", "line %d: expected 4 fields, got %d", line, len(rec))
		}
		number, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if line == 1 {
				continue //header
			}
			return nil, newError(ErrInvalidState, "ReadTable", "line %d: bad atomic number %q", line, rec[0])
		}
		mass, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, newError(ErrInvalidState, "ReadTable", "line %d: bad atomic mass %q", line, rec[3])
		}
		e := newElement(number, strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2]), mass)
		if err := T.add(e, line); err != nil {
			return nil, errDecorate(err, "ReadTable")
		}
	}
	return T, nil
}

// ReadTableFile reads a Table from the file name. The file can be a plain CSV file, or
// a CSV file compressed with gzip or zstandard. The format string can be "csv", "gz" or
// "zst". If it is empty, it will be deduced from the file extension.
func ReadTableFile(name, format string) (*Table, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(ErrInvalidState, "ReadTableFile", "%s", err.Error())
	}
	defer f.Close()
	reader := bufio.NewReader(f)
	var src io.Reader
	switch format {
	case "csv", "txt":
		src = reader
	case "gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, newError(ErrInvalidState, "ReadTableFile", "%s: %s", name, err.Error())
		}
		defer gz.Close()
		src = gz
	case "zst":
		zs, err := zstd.NewReader(reader)
		if err != nil {
			return nil, newError(ErrInvalidState, "ReadTableFile", "%s: %s", name, err.Error())
		}
		defer zs.Close()
		src = zs
	default:
		return nil, newError(ErrInvalidState, "ReadTableFile", "format %q of %s not supported", format, name)
	}
	T, err := ReadTable(src)
	if err != nil {
		return nil, errDecorate(err, "ReadTableFile: "+name)
	}
	return T, nil
}
