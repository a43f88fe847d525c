/*
 * table_test.go, part of gostoich.
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

package stoich

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestDefaultTable(Te *testing.T) {
	T := DefaultTable()
	if T.Len() != MaxAtomicNumber {
		Te.Errorf("Expected %d elements, got %d", MaxAtomicNumber, T.Len())
	}
	els := T.Elements()
	for i, e := range els {
		if e.Number() != i+1 {
			Te.Errorf("Element %s at position %d", e.Symbol(), i)
		}
	}
	if T != DefaultTable() {
		Te.Error("DefaultTable built twice")
	}
	fe, err := T.ByNumber(26)
	if err != nil || fe.Symbol() != "Fe" {
		Te.Errorf("ByNumber(26) gave %v, %v", fe, err)
	}
	if _, err := T.ByNumber(119); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("ByNumber(119) should fail with ErrUnknownElement, got %v", err)
	}
}

func TestLookup(Te *testing.T) {
	tests := []struct {
		symbol  string
		name    string
		number  int
		valence int
	}{
		{"H", "Hydrogen", 1, 1},
		{"He", "Helium", 2, 2},
		{"C", "Carbon", 6, 4},
		{"Ne", "Neon", 10, 8},
		{"Na", "Sodium", 11, 1},
		{"Cl", "Chlorine", 17, 7},
		{"Og", "Oganesson", 118, 4},
	}
	for _, t := range tests {
		e, err := Lookup(t.symbol)
		if err != nil {
			Te.Error(err)
			continue
		}
		if e.Name() != t.name || e.Number() != t.number || e.Valence() != t.valence {
			Te.Errorf("%s: got %s Z=%d valence %d", t.symbol, e.Name(), e.Number(), e.Valence())
		}
	}
	for _, bad := range []string{"na", "NA", "Xx", ""} {
		_, err := Lookup(bad)
		if !errors.Is(err, ErrUnknownElement) {
			Te.Errorf("Lookup(%q) should fail with ErrUnknownElement, got %v", bad, err)
		}
	}
}

func TestReadTable(Te *testing.T) {
	T, err := ReadTableFile("test/mini_elements.csv", "")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Len() != 3 {
		Te.Errorf("Expected 3 elements, got %d", T.Len())
	}
	F, err := T.Parse("CO_2")
	if err != nil {
		Te.Fatal(err)
	}
	if F.MolarMass() != 44 {
		Te.Errorf("CO_2 with integer masses should weigh 44, got %f", F.MolarMass())
	}
	if _, err := T.Parse("NaCl"); !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("Na is not in the mini table, got %v", err)
	}
	broken := []string{
		"1,Hydrogen,H,1.0\n1,Deuterium,D,2.0\n",
		"1,Hydrogen,H,1.0\n2,Hydrogen,H,1.0\n",
		"1,Hydrogen,H,heavy\n",
		"200,Unobtainium,Uo,1.0\n",
		"1,Hydrogen,H\n",
		"1,Hydrogen,H,1.0\nX,Helium,He,4.0\n",
	}
	for _, b := range broken {
		if _, err := ReadTable(strings.NewReader(b)); !errors.Is(err, ErrInvalidState) {
			Te.Errorf("Table %q should be rejected, got %v", b, err)
		}
	}
}

func TestReadCompressedTable(Te *testing.T) {
	dir := Te.TempDir()
	gzname := filepath.Join(dir, "elements.csv.gz")
	f, err := os.Create(gzname)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	gz.Write([]byte(elementsCSV))
	gz.Close()
	f.Close()

	zsname := filepath.Join(dir, "elements.csv.zst")
	f, err = os.Create(zsname)
	if err != nil {
		Te.Fatal(err)
	}
	zs, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	zs.Write([]byte(elementsCSV))
	zs.Close()
	f.Close()

	for _, name := range []string{gzname, zsname} {
		T, err := ReadTableFile(name, "")
		if err != nil {
			Te.Error(err)
			continue
		}
		if T.Len() != MaxAtomicNumber {
			Te.Errorf("%s: expected %d elements, got %d", name, MaxAtomicNumber, T.Len())
		}
	}
	if _, err := ReadTableFile(zsname, "gz"); err == nil {
		Te.Error("A zstd file read as gzip should fail")
	}
	if _, err := ReadTableFile(filepath.Join(dir, "elements.xlsx"), ""); err == nil {
		Te.Error("Missing file should fail")
	}
}
